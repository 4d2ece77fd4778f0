package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rvasa/dispersim/internal/config"
	"github.com/rvasa/dispersim/internal/dispersion"
	"github.com/rvasa/dispersim/internal/glass"
	"github.com/rvasa/dispersim/internal/optics"
	"github.com/rvasa/dispersim/internal/report"
	"github.com/rvasa/dispersim/internal/storage"
	"github.com/rvasa/dispersim/internal/tui"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	wavelength float64
	pulse      float64
	threshold  float64
	noSave     bool
	// Sweep/curve range
	fromNm  float64
	toNm    float64
	steps   int
	htmlOut string
	csvOut  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dispersim",
		Short: "chromatic dispersion calculator for optical element stacks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dispersim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate GDD/TOD and pulse broadening for a stack",
		RunE:  runEval,
	}
	evalCmd.Flags().StringVar(&configFile, "config", "", "stack config file (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset stack")
	evalCmd.Flags().Float64Var(&wavelength, "wavelength", 0, "probe wavelength (nm), overrides config")
	evalCmd.Flags().Float64Var(&pulse, "pulse", 0, "input pulse duration (fs), overrides config")
	evalCmd.Flags().Float64Var(&threshold, "threshold", 0, "air-likeness index threshold, overrides config")
	evalCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	indexCmd := &cobra.Command{
		Use:   "index [material]",
		Short: "refractive index and dispersion of a material",
		Args:  cobra.ExactArgs(1),
		RunE:  runIndex,
	}
	indexCmd.Flags().Float64Var(&wavelength, "wavelength", optics.DLineNm, "probe wavelength (nm)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list modeled materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MATERIAL\tN(D-LINE)")
			for _, name := range glass.Materials() {
				c, _ := glass.Lookup(name)
				fmt.Fprintf(w, "%s\t%.5f\n", name, c.Index(optics.DLineNm))
			}
			return w.Flush()
		},
	}

	curveCmd := &cobra.Command{
		Use:   "curve [material]",
		Short: "plot index and per-mm GDD across a wavelength band",
		Args:  cobra.ExactArgs(1),
		RunE:  runCurve,
	}
	curveCmd.Flags().Float64Var(&fromNm, "from", 400, "band start (nm)")
	curveCmd.Flags().Float64Var(&toNm, "to", 1600, "band end (nm)")
	curveCmd.Flags().IntVar(&steps, "steps", 120, "number of samples")
	curveCmd.Flags().StringVar(&htmlOut, "html", "", "write interactive chart to file")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep stack dispersion across a wavelength band",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "stack config file (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset stack")
	sweepCmd.Flags().Float64Var(&fromNm, "from", 400, "band start (nm)")
	sweepCmd.Flags().Float64Var(&toNm, "to", 1600, "band end (nm)")
	sweepCmd.Flags().IntVar(&steps, "steps", 120, "number of samples")
	sweepCmd.Flags().Float64Var(&pulse, "pulse", 0, "input pulse duration (fs), overrides config")
	sweepCmd.Flags().StringVar(&htmlOut, "html", "", "write interactive chart to file")
	sweepCmd.Flags().StringVar(&csvOut, "csv", "", "write sweep samples to file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export per-element contributions as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset stacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tWAVELENGTH\tPULSE\tELEMENTS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1f nm\t%.0f fs\t%d\n", name, p.WavelengthNm, p.PulseFs, len(p.Elements))
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive dispersion explorer",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "stack config file (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset stack")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter stack config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(evalCmd, indexCmd, materialsCmd, curveCmd, sweepCmd, listCmd, exportCmd, exportCSVCmd, presetsCmd, liveCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadStack resolves preset and config file into a stack plus the
// effective wavelength, pulse, and aggregation options. CLI flags win
// over the config values.
func loadStack(cmd *cobra.Command) (optics.Stack, float64, float64, dispersion.Options, error) {
	opts := dispersion.DefaultOptions()

	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, 0, 0, opts, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, 0, 0, opts, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	lambda := cfg.WavelengthNm
	tau := cfg.PulseFs
	if cfg.AirIndexThreshold > 0 {
		opts.AirIndexThreshold = cfg.AirIndexThreshold
	}
	if cmd.Flags().Changed("wavelength") {
		lambda = wavelength
	}
	if cmd.Flags().Changed("pulse") {
		tau = pulse
	}
	if cmd.Flags().Changed("threshold") {
		opts.AirIndexThreshold = threshold
	}

	stack, err := cfg.Stack()
	if err != nil {
		return nil, 0, 0, opts, err
	}

	log.WithFields(log.Fields{
		"elements":   len(stack),
		"wavelength": lambda,
		"pulse":      tau,
	}).Debug("stack loaded")

	return stack, lambda, tau, opts, nil
}

// checkPoles rejects a probe wavelength sitting on a Sellmeier
// resonance of any modeled element instead of letting the divergent
// arithmetic through.
func checkPoles(stack optics.Stack, lambdaNm float64) error {
	for _, e := range stack {
		c, ok := glass.Lookup(e.Material)
		if !ok {
			continue
		}
		if c.NearPole(lambdaNm) {
			return fmt.Errorf("%s at %.2f nm: %w", e.Material, lambdaNm, optics.ErrSellmeierPole)
		}
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	stack, lambda, tau, opts, err := loadStack(cmd)
	if err != nil {
		return err
	}
	if err := checkPoles(stack, lambda); err != nil {
		return err
	}

	start := time.Now()
	result, err := dispersion.Aggregate(stack, lambda, tau, opts)
	if err != nil {
		return err
	}
	log.WithField("time", time.Since(start)).Debug("stack evaluated")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tTHICKNESS\tGDD\tTOD\t")
	for _, c := range result.Contributions {
		if c.Skipped {
			fmt.Fprintf(w, "%s\t%.3f mm\t-\t-\tskipped\n", c.Material, c.ThicknessMM)
			continue
		}
		fmt.Fprintf(w, "%s\t%.3f mm\t%.3f fs²\t%.3f fs³\t\n", c.Material, c.ThicknessMM, c.GDDfs2, c.TODfs3)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nwavelength: %.1f nm\n", lambda)
	fmt.Printf("total GDD:  %.3f fs²\n", result.GDDfs2)
	fmt.Printf("total TOD:  %.3f fs³\n", result.TODfs3)
	fmt.Printf("pulse:      %.1f fs -> %.3f fs\n", tau, result.PulseOutFs)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(result)
	if err != nil {
		return err
	}
	fmt.Printf("run id:     %s\n", runID)
	return nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	material := args[0]
	c, ok := glass.Lookup(material)
	if !ok {
		return fmt.Errorf("%s: %w", material, optics.ErrUnknownMaterial)
	}
	if c.NearPole(wavelength) {
		return fmt.Errorf("%s at %.2f nm: %w", material, wavelength, optics.ErrSellmeierPole)
	}

	d2 := dispersion.D2Index(c, wavelength)
	d3 := dispersion.D3Index(c, wavelength)

	fmt.Printf("material:   %s\n", material)
	fmt.Printf("wavelength: %.1f nm\n", wavelength)
	fmt.Printf("n:          %.6f\n", c.Index(wavelength))
	fmt.Printf("d²n/dλ²:    %.6e nm⁻²\n", d2)
	fmt.Printf("d³n/dλ³:    %.6e nm⁻³\n", d3)
	fmt.Printf("GDD/mm:     %.4f fs²\n", dispersion.GDD(wavelength, d2, 1.0))
	fmt.Printf("TOD/mm:     %.4f fs³\n", dispersion.TOD(wavelength, d2, d3, 1.0))
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	material := args[0]
	c, ok := glass.Lookup(material)
	if !ok {
		return fmt.Errorf("%s: %w", material, optics.ErrUnknownMaterial)
	}

	points := dispersion.Curve(c, fromNm, toNm, steps)

	index := make([]float64, len(points))
	gdd := make([]float64, len(points))
	x := make([]float64, len(points))
	for i, p := range points {
		index[i] = p.Index
		gdd[i] = p.GDDfs2PerMM
		x[i] = p.WavelengthNm
	}

	fmt.Println(asciigraph.Plot(index,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: n(λ), %.0f–%.0f nm", material, fromNm, toNm)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(gdd,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: GDD fs²/mm, %.0f–%.0f nm", material, fromNm, toNm)),
	))

	if htmlOut == "" {
		return nil
	}
	line := report.LineChart(
		fmt.Sprintf("Dispersion curve: %s", material),
		"Wavelength, nm", "GDD, fs²/mm",
		x,
		[]report.Series{{Name: material, Values: gdd}},
	)
	if err := report.WriteHTML(htmlOut, line); err != nil {
		return err
	}
	fmt.Printf("\nchart: %s\n", htmlOut)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	stack, _, tau, opts, err := loadStack(cmd)
	if err != nil {
		return err
	}

	points, err := dispersion.Sweep(stack, fromNm, toNm, steps, tau, opts)
	if err != nil {
		return err
	}

	x := make([]float64, len(points))
	gdd := make([]float64, len(points))
	tod := make([]float64, len(points))
	pulseOut := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.WavelengthNm
		gdd[i] = p.GDDfs2
		tod[i] = p.TODfs3
		pulseOut[i] = p.PulseOutFs
	}

	fmt.Println(asciigraph.Plot(gdd,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("stack GDD fs², %.0f–%.0f nm", fromNm, toNm)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(pulseOut,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("exit pulse fs (%.0f fs in), %.0f–%.0f nm", tau, fromNm, toNm)),
	))

	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w := csv.NewWriter(f)
		defer w.Flush()
		if err := w.Write([]string{"wavelength_nm", "gdd_fs2", "tod_fs3", "pulse_out_fs"}); err != nil {
			return err
		}
		for _, p := range points {
			row := []string{
				strconv.FormatFloat(p.WavelengthNm, 'f', 2, 64),
				strconv.FormatFloat(p.GDDfs2, 'f', 6, 64),
				strconv.FormatFloat(p.TODfs3, 'f', 6, 64),
				strconv.FormatFloat(p.PulseOutFs, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		fmt.Printf("\ncsv: %s\n", csvOut)
	}

	if htmlOut == "" {
		return nil
	}
	line := report.LineChart(
		"Stack dispersion sweep",
		"Wavelength, nm", "fs² / fs³ / fs",
		x,
		[]report.Series{
			{Name: "GDD fs²", Values: gdd},
			{Name: "TOD fs³", Values: tod},
			{Name: "exit pulse fs", Values: pulseOut},
		},
	)
	if err := report.WriteHTML(htmlOut, line); err != nil {
		return err
	}
	fmt.Printf("\nchart: %s\n", htmlOut)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tWAVELENGTH\tGDD\tTOD\tPULSE OUT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f nm\t%.2f fs²\t%.2f fs³\t%.2f fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.WavelengthNm,
			run.GDDfs2,
			run.TODfs3,
			run.PulseOutFs,
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	contribs, err := st.LoadContributions(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"material", "thickness_mm", "gdd_fs2", "tod_fs3", "skipped"}); err != nil {
		return err
	}
	for _, c := range contribs {
		row := []string{
			c.Material,
			strconv.FormatFloat(c.ThicknessMM, 'f', 4, 64),
			strconv.FormatFloat(c.GDDfs2, 'f', 6, 64),
			strconv.FormatFloat(c.TODfs3, 'f', 6, 64),
			strconv.FormatBool(c.Skipped),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	stack, lambda, tau, opts, err := loadStack(cmd)
	if err != nil {
		return err
	}

	m := tui.NewModel(stack, lambda, tau, opts)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
