package solve_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/optomata/gomp/pkg/engine/enum"
	"github.com/optomata/gomp/pkg/engine/sat"
	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/params"
	"github.com/optomata/gomp/pkg/solve"
)

func intVar(name string, lo, hi float64) mp.Variable {
	b, err := mp.NewBounds(lo, hi)
	Expect(err).NotTo(HaveOccurred())
	v, err := mp.NewInt(name, b)
	Expect(err).NotTo(HaveOccurred())
	return v
}

func linSum(coefs []float64, vars ...mp.Variable) mp.SumTerms {
	terms := make([]mp.Term, len(vars))
	for i, v := range vars {
		tm, err := mp.NewTerm(coefs[i], v)
		Expect(err).NotTo(HaveOccurred())
		terms[i] = tm
	}
	return mp.NewSum(terms...)
}

func addConstraint(m *mp.MP, desc string, lhs mp.SumTerms, op mp.Operator, rhs float64) {
	c, err := mp.NewConstraint(desc, lhs, op, rhs)
	Expect(err).NotTo(HaveOccurred())
	_, err = m.Add(c)
	Expect(err).NotTo(HaveOccurred())
}

// oneFourThree is the classic two-product planning model: maximize
// 143x + 60y over a fertilizer budget, an insecticide budget and an
// acreage cap.
func oneFourThree() (*mp.MP, mp.Variable, mp.Variable) {
	x := intVar("x", 0, 100)
	y := intVar("y", 0, 100)
	m := mp.New()
	m.SetName("OneFourThree")
	addConstraint(m, "fertilizer", linSum([]float64{120, 210}, x, y), mp.LE, 15000)
	addConstraint(m, "insecticide", linSum([]float64{110, 30}, x, y), mp.LE, 4000)
	addConstraint(m, "acreage", linSum([]float64{1, 1}, x, y), mp.LE, 75)
	_, err := m.SetObjective(linSum([]float64{143, 60}, x, y), mp.Max)
	Expect(err).NotTo(HaveOccurred())
	return m, x, y
}

var _ = Describe("solving through the facade", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("an integer program on the enumeration engine", func() {
		It("finds the optimum of the planning model", func() {
			m, x, y := oneFourThree()
			solver, err := solve.New(enum.New())
			Expect(err).NotTo(HaveOccurred())

			result, err := solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status()).To(Equal(solve.StatusOptimal))

			sol, ok := result.Solution()
			Expect(ok).To(BeTrue())
			Expect(sol.Objective()).To(Equal(6266.0))
			Expect(sol.Values()).To(Equal(map[mp.Variable]float64{x: 22, y: 52}))
		})

		It("tracks an added constraint on the next call", func() {
			m, x, y := oneFourThree()
			solver, err := solve.New(enum.New())
			Expect(err).NotTo(HaveOccurred())

			result, err := solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status()).To(Equal(solve.StatusOptimal))

			addConstraint(m, "x cap", linSum([]float64{1}, x), mp.LE, 16)
			result, err = solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status()).To(Equal(solve.StatusOptimal))

			sol, ok := result.Solution()
			Expect(ok).To(BeTrue())
			Expect(sol.Objective()).To(Equal(5828.0))
			Expect(sol.Values()).To(Equal(map[mp.Variable]float64{x: 16, y: 59}))

			last, err := solver.Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(last.Status()).To(Equal(solve.StatusOptimal))
		})

		It("reports a zero-objective search as feasible, not optimal", func() {
			m, _, _ := oneFourThree()
			_, err := m.SetObjective(mp.NewSum(), mp.Max)
			Expect(err).NotTo(HaveOccurred())

			solver, err := solve.New(enum.New())
			Expect(err).NotTo(HaveOccurred())

			result, err := solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status()).To(Equal(solve.StatusFeasible))

			sol, ok := result.Solution()
			Expect(ok).To(BeTrue())
			program := sol.Program()
			for _, c := range program.Constraints() {
				Expect(c.Satisfied(sol.Values())).To(BeTrue(), c.String())
			}
		})

		It("reports an over-constrained model as infeasible", func() {
			m, x, _ := oneFourThree()
			addConstraint(m, "x floor", linSum([]float64{1}, x), mp.GE, 80)

			solver, err := solve.New(enum.New())
			Expect(err).NotTo(HaveOccurred())

			result, err := solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status()).To(Equal(solve.StatusInfeasible))
			_, ok := result.Solution()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("a boolean program on the sat engine", func() {
		var (
			m       *mp.MP
			a, b, c mp.Variable
		)

		BeforeEach(func() {
			var err error
			a, err = mp.NewBool("a")
			Expect(err).NotTo(HaveOccurred())
			b, err = mp.NewBool("b")
			Expect(err).NotTo(HaveOccurred())
			c, err = mp.NewBool("c")
			Expect(err).NotTo(HaveOccurred())

			m = mp.New()
			addConstraint(m, "at most two", linSum([]float64{1, 1, 1}, a, b, c), mp.LE, 2)
			addConstraint(m, "a or b", linSum([]float64{1, 1}, a, b), mp.GE, 1)
			addConstraint(m, "not both a and c", linSum([]float64{1, 1}, a, c), mp.LE, 1)
		})

		It("finds a satisfying assignment", func() {
			solver, err := solve.New(sat.New())
			Expect(err).NotTo(HaveOccurred())

			result, err := solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status()).To(Equal(solve.StatusFeasible))

			sol, ok := result.Solution()
			Expect(ok).To(BeTrue())
			for _, cons := range sol.Program().Constraints() {
				Expect(cons.Satisfied(sol.Values())).To(BeTrue(), cons.String())
			}
		})

		It("reports an unsatisfiable program as infeasible", func() {
			addConstraint(m, "all three", linSum([]float64{1, 1, 1}, a, b, c), mp.GE, 3)

			solver, err := solve.New(sat.New())
			Expect(err).NotTo(HaveOccurred())

			result, err := solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status()).To(Equal(solve.StatusInfeasible))
		})

		It("rejects an objective as unsupported", func() {
			_, err := m.SetObjective(linSum([]float64{1}, a), mp.Max)
			Expect(err).NotTo(HaveOccurred())

			solver, err := solve.New(sat.New())
			Expect(err).NotTo(HaveOccurred())

			_, err = solver.Solve(ctx, m)
			var engErr *solve.EngineError
			Expect(errors.As(err, &engErr)).To(BeTrue())
		})
	})

	Describe("parameter handling across a solve", func() {
		It("snapshots the parameter state into the result", func() {
			m, _, _ := oneFourThree()
			p := params.New()
			_, err := p.SetDouble(params.MaxWallSeconds, 60)
			Expect(err).NotTo(HaveOccurred())

			solver, err := solve.New(enum.New(), solve.WithParams(p))
			Expect(err).NotTo(HaveOccurred())

			result, err := solver.Solve(ctx, m)
			Expect(err).NotTo(HaveOccurred())

			_, err = p.SetDouble(params.MaxWallSeconds, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Params().GetDouble(params.MaxWallSeconds)).To(Equal(60.0))
		})

		It("fails fast on conflicting limit settings", func() {
			m, _, _ := oneFourThree()
			p := params.New()
			_, err := p.SetDouble(params.MaxWallSeconds, 10)
			Expect(err).NotTo(HaveOccurred())
			_, err = p.SetDouble(params.MaxCPUSeconds, 10)
			Expect(err).NotTo(HaveOccurred())

			solver, err := solve.New(enum.New(), solve.WithParams(p))
			Expect(err).NotTo(HaveOccurred())

			_, err = solver.Solve(ctx, m)
			var conflict *params.ConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
		})
	})
})
