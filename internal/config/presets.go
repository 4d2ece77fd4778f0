package config

// Presets are reference stacks for quick evaluation without a config
// file. Nominal indices are the d-line values for each glass.
var Presets = map[string]*Config{
	"fs-window": {
		WavelengthNm: 800, PulseFs: 100,
		Elements: []ElementConfig{
			{Material: "fused-silica", ThicknessMM: 6.0, Type: "dispersive", Index: 1.4585},
		},
	},
	"bk7-lens": {
		WavelengthNm: 587.6, PulseFs: 100,
		Elements: []ElementConfig{
			{Material: "bk7", ThicknessMM: 10.0, Type: "dispersive", Index: 1.5168},
			{Material: "air", ThicknessMM: 95.0, Type: "gap", Index: 1.0},
		},
	},
	"sf11-prism-pair": {
		WavelengthNm: 800, PulseFs: 30,
		Elements: []ElementConfig{
			{Material: "sf11", ThicknessMM: 3.0, Type: "dispersive", Index: 1.7847},
			{Material: "air", ThicknessMM: 250.0, Type: "gap", Index: 1.0},
			{Material: "sf11", ThicknessMM: 3.0, Type: "dispersive", Index: 1.7847},
		},
	},
	"achromat": {
		WavelengthNm: 587.6, PulseFs: 150,
		Elements: []ElementConfig{
			{Material: "bk7", ThicknessMM: 4.0, Type: "dispersive", Index: 1.5168},
			{Material: "sf10", ThicknessMM: 2.5, Type: "dispersive", Index: 1.7283},
			{Material: "air", ThicknessMM: 50.0, Type: "gap", Index: 1.0},
		},
	},
	"uv-train": {
		WavelengthNm: 400, PulseFs: 80,
		Elements: []ElementConfig{
			{Material: "caf2", ThicknessMM: 5.0, Type: "dispersive", Index: 1.4338},
			{Material: "mgf2", ThicknessMM: 2.0, Type: "dispersive", Index: 1.3777},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
