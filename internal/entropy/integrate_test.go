package entropy_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/culturesim/culturesim/internal/entropy"
)

var _ = Describe("Integrate", func() {
	var (
		grid    *entropy.Grid
		forcing []float64
		params  entropy.Params
	)

	BeforeEach(func() {
		m := entropy.NewModel()
		params = m.Params

		var err error
		grid, err = entropy.NewGrid(8, 801)
		Expect(err).NotTo(HaveOccurred())

		forcing, err = entropy.Forcing(grid, m.Drivers, m.Coeffs)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts exactly at the initial condition", func() {
		e, err := entropy.Integrate(grid, forcing, params, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(HaveLen(801))
		Expect(e[0]).To(Equal(0.4))
	})

	It("takes the first step toward exp(-0.965)", func() {
		e, err := entropy.Integrate(grid, forcing, params, true)
		Expect(err).NotTo(HaveOccurred())

		inst := math.Exp(-0.965)
		de := params.Gamma*0.4 + params.Lambda*(inst-0.4)
		Expect(e[1]).To(BeNumerically("~", 0.4+de*grid.Dt, 1e-12))
	})

	It("is deterministic across runs", func() {
		a, err := entropy.Integrate(grid, forcing, params, true)
		Expect(err).NotTo(HaveOccurred())
		b, err := entropy.Integrate(grid, forcing, params, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("handles the minimum two-sample grid", func() {
		g, err := entropy.NewGrid(8, 2)
		Expect(err).NotTo(HaveOccurred())

		f, err := entropy.Forcing(g, entropy.DefaultDrivers(), entropy.Coefficients{
			Alpha: 1.0, Delta: 0.8, Beta: 1.5,
		})
		Expect(err).NotTo(HaveOccurred())

		e, err := entropy.Integrate(g, f, params, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(HaveLen(2))
		Expect(e[0]).To(Equal(0.4))
	})

	It("rejects a forcing series misaligned with the grid", func() {
		_, err := entropy.Integrate(grid, forcing[:100], params, true)
		Expect(err).To(MatchError(entropy.ErrSeriesLength))
	})

	It("surfaces divergence instead of clamping", func() {
		// Absurd forcing: exp(D) overflows float64 within a few steps.
		hot := make([]float64, grid.Len())
		for i := range hot {
			hot[i] = 800
		}

		_, err := entropy.Integrate(grid, hot, params, true)
		Expect(err).To(MatchError(entropy.ErrDiverged))

		var stepErr *entropy.StepError
		Expect(err).To(BeAssignableToTypeOf(stepErr))
	})

	It("leaves the blow-up unchecked when finite checking is off", func() {
		hot := make([]float64, grid.Len())
		for i := range hot {
			hot[i] = 800
		}

		e, err := entropy.Integrate(grid, hot, params, false)
		Expect(err).NotTo(HaveOccurred())

		last := e[len(e)-1]
		Expect(math.IsNaN(last) || math.IsInf(last, 0)).To(BeTrue())
	})
})

var _ = Describe("Recognition", func() {
	It("recomputes pointwise as RMax*exp(-k*E)", func() {
		e := []float64{0.0, 0.4, 1.0, 3.5, 12.0}
		r := entropy.Recognition(e, 0.75, 1.0)

		Expect(r).To(HaveLen(len(e)))
		for i := range e {
			Expect(r[i]).To(Equal(1.0 * math.Exp(-0.75*e[i])))
		}
	})

	It("stays in (0, RMax] and decreases with entropy", func() {
		e := []float64{-1.0, 0.0, 0.5, 2.0, 40.0}
		r := entropy.Recognition(e, 0.75, 1.0)

		for i := range r {
			Expect(r[i]).To(BeNumerically(">", 0))
			if e[i] >= 0 {
				Expect(r[i]).To(BeNumerically("<=", 1.0))
			}
			if i > 0 {
				Expect(r[i]).To(BeNumerically("<", r[i-1]))
			}
		}
	})

	It("reaches RMax exactly at zero entropy", func() {
		r := entropy.Recognition([]float64{0}, 0.75, 1.0)
		Expect(r[0]).To(Equal(1.0))
	})
})

var _ = Describe("Model", func() {
	It("produces four aligned series", func() {
		res, err := entropy.NewModel().Run()
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Grid.Len()).To(Equal(801))
		Expect(res.Years).To(HaveLen(801))
		Expect(res.Forcing).To(HaveLen(801))
		Expect(res.Entropy).To(HaveLen(801))
		Expect(res.Recognition).To(HaveLen(801))

		Expect(res.Years[0]).To(Equal(1950.0))
		Expect(res.Years[800]).To(BeNumerically("~", 2030.0, 1e-9))
	})

	It("reports the static equilibrium exp(1.30) at the final decade", func() {
		res, err := entropy.NewModel().Run()
		Expect(err).NotTo(HaveOccurred())

		static := res.StaticEquilibrium()
		Expect(static[800]).To(BeNumerically("~", math.Exp(1.30), 1e-9))
	})

	It("keeps recognition consistent with entropy throughout", func() {
		m := entropy.NewModel()
		res, err := m.Run()
		Expect(err).NotTo(HaveOccurred())

		for i := range res.Entropy {
			want := m.Params.RMax * math.Exp(-m.Params.K*res.Entropy[i])
			Expect(res.Recognition[i]).To(Equal(want))
		}
	})

	It("rejects a sample count below two", func() {
		m := entropy.NewModel()
		m.Samples = 1
		_, err := m.Run()
		Expect(err).To(MatchError(entropy.ErrSampleCount))
	})

	It("summarizes the run", func() {
		res, err := entropy.NewModel().Run()
		Expect(err).NotTo(HaveOccurred())

		s := res.Summary()
		Expect(s).To(HaveKey("final_entropy"))
		Expect(s["peak_entropy"]).To(BeNumerically(">=", s["final_entropy"]))
		Expect(s["final_recognition"]).To(BeNumerically(">", 0))
		// The reference trajectory loses half its coherence during the run.
		Expect(s["half_coherence_yr"]).To(BeNumerically(">", 1950))
	})
})
