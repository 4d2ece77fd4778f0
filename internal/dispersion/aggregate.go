package dispersion

import (
	"github.com/rvasa/dispersim/internal/glass"
	"github.com/rvasa/dispersim/internal/optics"
)

// Options tunes the aggregation policy.
type Options struct {
	// AirIndexThreshold is the nominal-index cutoff below which an
	// element is considered air-like and excluded from the physics.
	AirIndexThreshold float64
}

func DefaultOptions() Options {
	return Options{AirIndexThreshold: optics.DefaultAirIndexThreshold}
}

// includes reports whether an element participates in dispersion
// accounting: it must be tagged dispersive, look glass-like, and
// resolve to a known Sellmeier model. Elements failing any condition
// contribute zero and are skipped without error.
func (o Options) includes(e optics.Element) bool {
	if e.Type == optics.Gap {
		return false
	}
	if e.Index <= o.AirIndexThreshold {
		return false
	}
	return glass.Known(e.Material)
}

// Aggregate walks the stack in order, sums per-element GDD and TOD at
// the probe wavelength, and predicts the exit pulse duration. Every
// call is a pure function of its inputs; nothing is cached or shared,
// so independent stacks may be evaluated concurrently.
//
// Unresolvable materials are silently excluded; callers wanting
// strict validation pre-check each element with glass.Known.
func Aggregate(stack optics.Stack, lambdaNm, pulseFs float64, opts Options) (optics.Result, error) {
	if len(stack) == 0 {
		return optics.Result{}, optics.ErrEmptyStack
	}
	if pulseFs <= 0 {
		return optics.Result{}, optics.ErrInvalidPulse
	}

	res := optics.Result{
		WavelengthNm:  lambdaNm,
		PulseInFs:     pulseFs,
		Contributions: make([]optics.Contribution, 0, len(stack)),
	}

	for _, e := range stack {
		contrib := optics.Contribution{
			Material:    e.Material,
			ThicknessMM: e.ThicknessMM,
		}
		if !opts.includes(e) {
			contrib.Skipped = true
			res.Contributions = append(res.Contributions, contrib)
			continue
		}

		c, _ := glass.Lookup(e.Material)
		d2 := D2Index(c, lambdaNm)
		d3 := D3Index(c, lambdaNm)

		contrib.GDDfs2 = GDD(lambdaNm, d2, e.ThicknessMM)
		contrib.TODfs3 = TOD(lambdaNm, d2, d3, e.ThicknessMM)

		res.GDDfs2 += contrib.GDDfs2
		res.TODfs3 += contrib.TODfs3
		res.Contributions = append(res.Contributions, contrib)
	}

	res.PulseOutFs = Broaden(pulseFs, res.GDDfs2, res.TODfs3)
	return res, nil
}
