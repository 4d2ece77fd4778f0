package dispersion

import (
	"github.com/rvasa/dispersim/internal/glass"
	"github.com/rvasa/dispersim/internal/optics"
)

// SweepPoint is one sample of a wavelength sweep.
type SweepPoint struct {
	WavelengthNm float64
	GDDfs2       float64
	TODfs3       float64
	PulseOutFs   float64
}

// Sweep evaluates the stack at evenly spaced probe wavelengths across
// [fromNm, toNm] and returns one point per sample. steps is the number
// of intervals; steps+1 points come back.
func Sweep(stack optics.Stack, fromNm, toNm float64, steps int, pulseFs float64, opts Options) ([]SweepPoint, error) {
	if steps < 1 {
		steps = 1
	}
	points := make([]SweepPoint, 0, steps+1)
	dl := (toNm - fromNm) / float64(steps)

	for i := 0; i <= steps; i++ {
		lambda := fromNm + float64(i)*dl
		res, err := Aggregate(stack, lambda, pulseFs, opts)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{
			WavelengthNm: lambda,
			GDDfs2:       res.GDDfs2,
			TODfs3:       res.TODfs3,
			PulseOutFs:   res.PulseOutFs,
		})
	}
	return points, nil
}

// CurvePoint is one sample of a single-material dispersion curve.
type CurvePoint struct {
	WavelengthNm float64
	Index        float64
	GDDfs2PerMM  float64
}

// Curve samples a single material's refractive index and per-millimeter
// GDD across [fromNm, toNm].
func Curve(c glass.Coefficients, fromNm, toNm float64, steps int) []CurvePoint {
	if steps < 1 {
		steps = 1
	}
	points := make([]CurvePoint, 0, steps+1)
	dl := (toNm - fromNm) / float64(steps)

	for i := 0; i <= steps; i++ {
		lambda := fromNm + float64(i)*dl
		points = append(points, CurvePoint{
			WavelengthNm: lambda,
			Index:        c.Index(lambda),
			GDDfs2PerMM:  GDD(lambda, D2Index(c, lambda), 1.0),
		})
	}
	return points
}
