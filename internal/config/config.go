package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rvasa/dispersim/internal/optics"
)

const (
	DefaultWavelengthNm = 800.0
	DefaultPulseFs      = 100.0
	DefaultThicknessMM  = 5.0
	DefaultIndex        = 1.5168
)

// Config describes a stack evaluation: the elements, the probe
// wavelength, and the input pulse. It round-trips through YAML.
type Config struct {
	WavelengthNm      float64         `yaml:"wavelength_nm"`
	PulseFs           float64         `yaml:"pulse_fs"`
	AirIndexThreshold float64         `yaml:"air_index_threshold,omitempty"`
	Elements          []ElementConfig `yaml:"elements"`
}

type ElementConfig struct {
	Material    string  `yaml:"material"`
	ThicknessMM float64 `yaml:"thickness_mm"`
	Type        string  `yaml:"type"`
	Index       float64 `yaml:"index"`
}

func DefaultConfig() *Config {
	return &Config{
		WavelengthNm: DefaultWavelengthNm,
		PulseFs:      DefaultPulseFs,
		Elements: []ElementConfig{
			{Material: "bk7", ThicknessMM: DefaultThicknessMM, Type: string(optics.Dispersive), Index: DefaultIndex},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		WavelengthNm: DefaultWavelengthNm,
		PulseFs:      DefaultPulseFs,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Stack converts the element list to the engine's domain type.
// An element with an unrecognized type tag is an error rather than a
// silent default; the physics-level skipping rules only apply to
// well-formed elements.
func (c *Config) Stack() (optics.Stack, error) {
	stack := make(optics.Stack, 0, len(c.Elements))
	for i, e := range c.Elements {
		var t optics.ElementType
		switch e.Type {
		case string(optics.Dispersive), "":
			t = optics.Dispersive
		case string(optics.Gap), "air", "non-dispersive":
			t = optics.Gap
		default:
			return nil, fmt.Errorf("element %d: unknown type %q", i, e.Type)
		}
		if e.ThicknessMM < 0 {
			return nil, fmt.Errorf("element %d: negative thickness %.3f mm", i, e.ThicknessMM)
		}
		stack = append(stack, optics.Element{
			Material:    e.Material,
			ThicknessMM: e.ThicknessMM,
			Type:        t,
			Index:       e.Index,
		})
	}
	return stack, nil
}
