package dispersion_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rvasa/dispersim/internal/dispersion"
	"github.com/rvasa/dispersim/internal/optics"
)

func TestDispersion(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dispersion Suite")
}

func fsElement(thicknessMM float64) optics.Element {
	return optics.Element{
		Material:    "fused-silica",
		ThicknessMM: thicknessMM,
		Type:        optics.Dispersive,
		Index:       1.4585,
	}
}

var _ = Describe("Broaden", func() {
	It("reproduces the input pulse exactly at zero dispersion", func() {
		Expect(dispersion.Broaden(100, 0, 0)).To(Equal(100.0))
		Expect(dispersion.Broaden(7.5, 0, 0)).To(Equal(7.5))
	})

	It("matches the locked Gaussian broadening baselines", func() {
		Expect(dispersion.Broaden(100, 69.064384, -199.176455)).To(BeNumerically("~", 100.018374, 1e-4))
		Expect(dispersion.Broaden(50, 224.001947, -445.209380)).To(BeNumerically("~", 51.526350, 1e-4))
		Expect(dispersion.Broaden(30, 179.048237, -498.621798)).To(BeNumerically("~", 34.356428, 1e-4))
	})

	It("never shortens the pulse", func() {
		for _, gdd := range []float64{-500, -50, 0, 50, 500} {
			Expect(dispersion.Broaden(25, gdd, 100)).To(BeNumerically(">=", 25))
		}
	})

	It("is symmetric in the sign of the dispersion terms", func() {
		Expect(dispersion.Broaden(40, 120, -300)).To(Equal(dispersion.Broaden(40, -120, 300)))
	})
})

var _ = Describe("Aggregate", func() {
	var opts dispersion.Options

	BeforeEach(func() {
		opts = dispersion.DefaultOptions()
	})

	It("matches the locked single-element baseline", func() {
		res, err := dispersion.Aggregate(optics.Stack{fsElement(6.0)}, 800, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.GDDfs2).To(BeNumerically("~", 69.064384, 1e-4))
		Expect(res.TODfs3).To(BeNumerically("~", -199.176455, 1e-4))
		Expect(res.PulseOutFs).To(BeNumerically("~", 100.018374, 1e-4))
		Expect(res.PulseOutFs).To(BeNumerically(">", res.PulseInFs))
	})

	It("is additive over elements of the same material", func() {
		split, err := dispersion.Aggregate(optics.Stack{fsElement(3.0), fsElement(3.0)}, 800, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		whole, err := dispersion.Aggregate(optics.Stack{fsElement(6.0)}, 800, 100, opts)
		Expect(err).NotTo(HaveOccurred())

		Expect(split.GDDfs2).To(BeNumerically("~", whole.GDDfs2, 1e-9))
		Expect(split.TODfs3).To(BeNumerically("~", whole.TODfs3, 1e-9))

		single, err := dispersion.Aggregate(optics.Stack{fsElement(3.0)}, 800, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(split.GDDfs2).To(BeNumerically("~", 2*single.GDDfs2, 1e-9))
	})

	It("excludes gap elements regardless of their material field", func() {
		gap := optics.Element{Material: "bk7", ThicknessMM: 10, Type: optics.Gap, Index: 1.5168}
		res, err := dispersion.Aggregate(optics.Stack{gap}, 587.6, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.GDDfs2).To(BeZero())
		Expect(res.TODfs3).To(BeZero())
		Expect(res.PulseOutFs).To(Equal(100.0))
		Expect(res.Contributions[0].Skipped).To(BeTrue())
	})

	It("excludes air-like elements at or below the index threshold", func() {
		airlike := optics.Element{Material: "bk7", ThicknessMM: 10, Type: optics.Dispersive, Index: 1.01}
		res, err := dispersion.Aggregate(optics.Stack{airlike}, 587.6, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.GDDfs2).To(BeZero())
		Expect(res.Contributions[0].Skipped).To(BeTrue())

		glasslike := airlike
		glasslike.Index = 1.011
		res, err = dispersion.Aggregate(optics.Stack{glasslike}, 587.6, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.GDDfs2).NotTo(BeZero())
	})

	It("honors a configured threshold", func() {
		opts.AirIndexThreshold = 1.5
		e := optics.Element{Material: "fused-silica", ThicknessMM: 6, Type: optics.Dispersive, Index: 1.4585}
		res, err := dispersion.Aggregate(optics.Stack{e}, 800, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.GDDfs2).To(BeZero())
	})

	It("silently skips unmodeled materials", func() {
		exotic := optics.Element{Material: "unobtainium", ThicknessMM: 5, Type: optics.Dispersive, Index: 1.9}
		with, err := dispersion.Aggregate(optics.Stack{exotic, fsElement(6.0)}, 800, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		without, err := dispersion.Aggregate(optics.Stack{fsElement(6.0)}, 800, 100, opts)
		Expect(err).NotTo(HaveOccurred())

		Expect(with.GDDfs2).To(Equal(without.GDDfs2))
		Expect(with.TODfs3).To(Equal(without.TODfs3))
		Expect(with.PulseOutFs).To(Equal(without.PulseOutFs))
		Expect(with.Contributions).To(HaveLen(2))
		Expect(with.Contributions[0].Skipped).To(BeTrue())
	})

	It("rejects a non-positive input pulse", func() {
		_, err := dispersion.Aggregate(optics.Stack{fsElement(6.0)}, 800, 0, opts)
		Expect(err).To(MatchError(optics.ErrInvalidPulse))
		_, err = dispersion.Aggregate(optics.Stack{fsElement(6.0)}, 800, -10, opts)
		Expect(err).To(MatchError(optics.ErrInvalidPulse))
	})

	It("rejects an empty stack", func() {
		_, err := dispersion.Aggregate(optics.Stack{}, 800, 100, opts)
		Expect(err).To(MatchError(optics.ErrEmptyStack))
	})
})

var _ = Describe("Sweep", func() {
	It("samples steps+1 points with matching endpoint evaluations", func() {
		stack := optics.Stack{fsElement(6.0)}
		opts := dispersion.DefaultOptions()

		points, err := dispersion.Sweep(stack, 700, 900, 20, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(21))
		Expect(points[0].WavelengthNm).To(Equal(700.0))
		Expect(points[20].WavelengthNm).To(Equal(900.0))

		first, err := dispersion.Aggregate(stack, 700, 100, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(points[0].GDDfs2).To(Equal(first.GDDfs2))
		Expect(points[0].PulseOutFs).To(Equal(first.PulseOutFs))
	})
})
