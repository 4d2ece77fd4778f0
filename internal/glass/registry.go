package glass

import (
	"sort"
	"strings"
)

// models is the fixed coefficient table, keyed by canonical name.
// Extending it with a new glass is a data change only. Coefficients
// are the published Sellmeier fits for each catalog glass; all of them
// reproduce the catalog d-line index within 1e-4.
var models = map[string]Coefficients{
	"fused-silica": {
		B: [3]float64{0.6961663, 0.4079426, 0.8974794},
		C: [3]float64{0.0684043 * 0.0684043, 0.1162414 * 0.1162414, 9.896161 * 9.896161},
	},
	"bk7": {
		B: [3]float64{1.03961212, 0.231792344, 1.01046945},
		C: [3]float64{0.00600069867, 0.0200179144, 103.560653},
	},
	"sf10": {
		B: [3]float64{1.62153902, 0.256287842, 1.64447552},
		C: [3]float64{0.0122241457, 0.0595736775, 147.468793},
	},
	"sf11": {
		B: [3]float64{1.73759695, 0.313747346, 1.89878101},
		C: [3]float64{0.013188707, 0.0623068142, 155.23629},
	},
	"baf10": {
		B: [3]float64{1.5851495, 0.143559385, 1.08521269},
		C: [3]float64{0.00926681282, 0.0424489805, 105.613573},
	},
	"caf2": {
		B: [3]float64{0.5675888, 0.4710914, 3.8484723},
		C: [3]float64{0.050263605 * 0.050263605, 0.1003909 * 0.1003909, 34.649040 * 34.649040},
	},
	"sapphire": {
		B: [3]float64{1.4313493, 0.65054713, 5.3414021},
		C: [3]float64{0.0726631 * 0.0726631, 0.1193242 * 0.1193242, 18.028251 * 18.028251},
	},
	"mgf2": {
		B: [3]float64{0.48755108, 0.39875031, 2.3120353},
		C: [3]float64{0.04338408 * 0.04338408, 0.09461442 * 0.09461442, 23.793604 * 23.793604},
	},
}

// aliases maps spelled-out and vendor names onto canonical keys.
// Matching stays exact after canonicalization; an unrecognized name is
// "not modeled", never a best guess.
var aliases = map[string]string{
	"fusedsilica":  "fused-silica",
	"silica":       "fused-silica",
	"sio2":         "fused-silica",
	"uvfs":         "fused-silica",
	"suprasil":     "fused-silica",
	"al2o3":        "sapphire",
	"fluorite":     "caf2",
	"borosilicate": "bk7",
}

// canon lowercases a material name and strips the separators and the
// "N-" catalog prefix that vary between glass vendors, so "BK7",
// "N-BK7" and "nbk7" all land on the same key.
func canon(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	if alias, ok := aliases[s]; ok {
		return alias
	}
	if _, ok := models[s]; ok {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "n"); ok {
		if alias, ok := aliases[rest]; ok {
			return alias
		}
		if _, ok := models[rest]; ok {
			return rest
		}
	}
	return s
}

// Lookup resolves a material name to its Sellmeier coefficients.
// The second return is false when the material is not modeled; callers
// must then fall back to their own constant index.
func Lookup(name string) (Coefficients, bool) {
	c, ok := models[canon(name)]
	return c, ok
}

// Known reports whether the registry models the given material.
func Known(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Materials returns the canonical model names in sorted order.
func Materials() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
