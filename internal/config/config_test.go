package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvasa/dispersim/internal/glass"
	"github.com/rvasa/dispersim/internal/optics"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")

	cfg := &Config{
		WavelengthNm:      1030,
		PulseFs:           200,
		AirIndexThreshold: 1.02,
		Elements: []ElementConfig{
			{Material: "fused-silica", ThicknessMM: 6, Type: "dispersive", Index: 1.4585},
			{Material: "air", ThicknessMM: 50, Type: "gap", Index: 1.0},
		},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")
	minimal := "elements:\n  - material: bk7\n    thickness_mm: 5\n    index: 1.5168\n"
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultWavelengthNm, cfg.WavelengthNm)
	require.Equal(t, DefaultPulseFs, cfg.PulseFs)
	require.Zero(t, cfg.AirIndexThreshold)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestStackConversion(t *testing.T) {
	cfg := &Config{
		Elements: []ElementConfig{
			{Material: "bk7", ThicknessMM: 10, Type: "dispersive", Index: 1.5168},
			{Material: "air", ThicknessMM: 95, Type: "air", Index: 1.0},
			{Material: "sf11", ThicknessMM: 3, Type: "", Index: 1.7847},
		},
	}

	stack, err := cfg.Stack()
	require.NoError(t, err)
	require.Len(t, stack, 3)
	require.Equal(t, optics.Dispersive, stack[0].Type)
	require.Equal(t, optics.Gap, stack[1].Type)
	require.Equal(t, optics.Dispersive, stack[2].Type, "empty tag defaults to dispersive")
}

func TestStackRejectsBadElements(t *testing.T) {
	bad := &Config{Elements: []ElementConfig{{Material: "bk7", ThicknessMM: 5, Type: "mirror", Index: 1.5}}}
	_, err := bad.Stack()
	require.ErrorContains(t, err, "unknown type")

	negative := &Config{Elements: []ElementConfig{{Material: "bk7", ThicknessMM: -1, Type: "dispersive", Index: 1.5}}}
	_, err = negative.Stack()
	require.ErrorContains(t, err, "negative thickness")
}

func TestPresetsAreWellFormed(t *testing.T) {
	require.NotEmpty(t, ListPresets())

	for _, name := range ListPresets() {
		p := GetPreset(name)
		require.NotNil(t, p, name)
		require.Positive(t, p.WavelengthNm, name)
		require.Positive(t, p.PulseFs, name)

		stack, err := p.Stack()
		require.NoError(t, err, name)
		for _, e := range stack {
			if e.Type == optics.Dispersive {
				require.True(t, glass.Known(e.Material), "%s: %s must be modeled", name, e.Material)
			}
		}
	}
}

func TestGetPresetUnknown(t *testing.T) {
	require.Nil(t, GetPreset("nope"))
}
