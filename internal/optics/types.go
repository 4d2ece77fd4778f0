package optics

// SpeedOfLight is the vacuum speed of light in m/s.
const SpeedOfLight = 299792458.0

// DLineNm is the standard d-line reference wavelength in nanometers,
// used to tabulate nominal refractive indices.
const DLineNm = 587.6

// DefaultAirIndexThreshold separates air-like from glass-like elements.
// Elements whose nominal index does not exceed it are treated as
// dispersion-free regardless of their material field.
const DefaultAirIndexThreshold = 1.01

type ElementType string

const (
	// Dispersive marks an element that participates in dispersion
	// accounting when its material resolves to a known model.
	Dispersive ElementType = "dispersive"
	// Gap marks a non-dispersive spacing element (air gap).
	Gap ElementType = "gap"
)

// Element is a single entry in an optical stack as seen by the
// dispersion engine. ThicknessMM is the physical path length in
// millimeters; Index is the nominal refractive index used only for the
// air-likeness inclusion test.
type Element struct {
	Material    string
	ThicknessMM float64
	Type        ElementType
	Index       float64
}

// Stack is an ordered sequence of elements, first surface to last.
type Stack []Element

func (s Stack) TotalPathMM() float64 {
	total := 0.0
	for _, e := range s {
		total += e.ThicknessMM
	}
	return total
}

// Dispersive reports how many elements would pass the type tag check.
func (s Stack) Dispersive() int {
	n := 0
	for _, e := range s {
		if e.Type != Gap {
			n++
		}
	}
	return n
}

// Contribution is one element's share of the stack totals.
type Contribution struct {
	Material    string
	ThicknessMM float64
	GDDfs2      float64
	TODfs3      float64
	Skipped     bool
}

// Result holds accumulated dispersion for a stack at one probe
// wavelength, plus the predicted exit pulse duration. It is derived
// fresh on every evaluation and never cached.
type Result struct {
	WavelengthNm  float64
	PulseInFs     float64
	GDDfs2        float64
	TODfs3        float64
	PulseOutFs    float64
	Contributions []Contribution
}
