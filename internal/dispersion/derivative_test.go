package dispersion

import (
	"math"
	"testing"

	"github.com/rvasa/dispersim/internal/glass"
)

func TestD2IndexFusedSilicaBaseline(t *testing.T) {
	c, ok := glass.Lookup("fused-silica")
	if !ok {
		t.Fatal("fused-silica not modeled")
	}

	// Locked against the 0.5 nm stencil; changing StepNm moves this.
	got := D2Index(c, 800)
	want := 3.988449e-08
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("d2n/dl2 at 800 nm: got %e, want %e", got, want)
	}
}

func TestD3IndexFusedSilicaBaseline(t *testing.T) {
	c, _ := glass.Lookup("fused-silica")

	got := D3Index(c, 800)
	want := -2.388285e-10
	if math.Abs(got-want) > 1e-14 {
		t.Errorf("d3n/dl3 at 800 nm: got %e, want %e", got, want)
	}
}

func TestNormalDispersionAcrossVisible(t *testing.T) {
	for _, name := range glass.Materials() {
		c, _ := glass.Lookup(name)
		for _, lambda := range []float64{400, 500, 600, 700} {
			if d2 := D2Index(c, lambda); d2 <= 0 {
				t.Errorf("%s at %.0f nm: expected normal dispersion, d2=%e", name, lambda, d2)
			}
		}
	}
}
