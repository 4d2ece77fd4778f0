package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rvasa/dispersim/internal/optics"
)

// Store persists evaluation runs under a base directory, one
// subdirectory per run: metadata.json with the totals and an
// elements.csv with the per-element breakdown.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	WavelengthNm float64   `json:"wavelength_nm"`
	PulseInFs    float64   `json:"pulse_in_fs"`
	GDDfs2       float64   `json:"gdd_fs2"`
	TODfs3       float64   `json:"tod_fs3"`
	PulseOutFs   float64   `json:"pulse_out_fs"`
	Elements     int       `json:"elements"`
}

func (s *Store) Save(result optics.Result) (string, error) {
	runID := fmt.Sprintf("eval_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		WavelengthNm: result.WavelengthNm,
		PulseInFs:    result.PulseInFs,
		GDDfs2:       result.GDDfs2,
		TODfs3:       result.TODfs3,
		PulseOutFs:   result.PulseOutFs,
		Elements:     len(result.Contributions),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "elements.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"material", "thickness_mm", "gdd_fs2", "tod_fs3", "skipped"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, c := range result.Contributions {
		row := []string{
			c.Material,
			strconv.FormatFloat(c.ThicknessMM, 'f', 4, 64),
			strconv.FormatFloat(c.GDDfs2, 'f', 6, 64),
			strconv.FormatFloat(c.TODfs3, 'f', 6, 64),
			strconv.FormatBool(c.Skipped),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadContributions reads back the per-element breakdown of a run.
func (s *Store) LoadContributions(runID string) ([]optics.Contribution, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "elements.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []optics.Contribution{}, nil
	}

	contribs := make([]optics.Contribution, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		thickness, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		gdd, _ := strconv.ParseFloat(record[2], 64)
		tod, _ := strconv.ParseFloat(record[3], 64)
		skipped, _ := strconv.ParseBool(record[4])
		contribs = append(contribs, optics.Contribution{
			Material:    record[0],
			ThicknessMM: thickness,
			GDDfs2:      gdd,
			TODfs3:      tod,
			Skipped:     skipped,
		})
	}

	return contribs, nil
}
