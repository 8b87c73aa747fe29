package solve

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/params"
)

// Durations is a wall-clock duration plus an optional CPU duration, both
// already computed by the caller.
type Durations struct {
	Wall   time.Duration
	CPU    time.Duration
	HasCPU bool
}

func (d Durations) String() string {
	if d.HasCPU {
		return fmt.Sprintf("wall %s, cpu %s", d.Wall, d.CPU)
	}
	return fmt.Sprintf("wall %s", d.Wall)
}

// BindingError reports a value assignment that does not cover exactly the
// bound program's variable set.
type BindingError struct {
	Missing []string
	Extra   []string
}

func (e *BindingError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("unassigned variables: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("assignments outside the program: %s", strings.Join(e.Extra, ", ")))
	}
	return "solution does not bind to its program: " + strings.Join(parts, "; ")
}

// Solution is an immutable feasible point. It is bound to a deep copy of
// the program it answers, and the assignment must cover exactly that
// program's variable set, so a solution cannot silently drift from its
// problem.
type Solution struct {
	program   *mp.MP
	objective float64
	values    map[mp.Variable]float64
	duals     map[string]float64
}

// NewSolution binds an assignment to a copy of the program. The symmetric
// difference between the assignment's variables and the program's variable
// set must be empty. Duals are optional and keyed by constraint
// description.
func NewSolution(program *mp.MP, objective float64, values map[mp.Variable]float64, duals map[string]float64) (*Solution, error) {
	if program == nil {
		return nil, &BindingError{Missing: []string{"<nil program>"}}
	}
	if math.IsNaN(objective) || math.IsInf(objective, 0) {
		return nil, fmt.Errorf("solution objective value %g is not finite", objective)
	}
	bound := program.Clone()
	var missing, extra []string
	for _, v := range bound.Variables() {
		if _, ok := values[v]; !ok {
			missing = append(missing, v.Description())
		}
	}
	for v := range values {
		if !bound.ContainsVariable(v) {
			extra = append(extra, v.Description())
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return nil, &BindingError{Missing: missing, Extra: extra}
	}
	owned := make(map[mp.Variable]float64, len(values))
	for v, x := range values {
		owned[v] = x
	}
	var ownedDuals map[string]float64
	if len(duals) > 0 {
		ownedDuals = make(map[string]float64, len(duals))
		for d, x := range duals {
			ownedDuals[d] = x
		}
	}
	return &Solution{program: bound, objective: objective, values: owned, duals: ownedDuals}, nil
}

// Program returns the read-only surface of the bound program copy.
func (s *Solution) Program() mp.View {
	return mp.ReadOnly(s.program)
}

func (s *Solution) Objective() float64 {
	return s.objective
}

// Value returns the primal value assigned to v.
func (s *Solution) Value(v mp.Variable) (float64, bool) {
	x, ok := s.values[v]
	return x, ok
}

// Values returns a copy of the full assignment.
func (s *Solution) Values() map[mp.Variable]float64 {
	out := make(map[mp.Variable]float64, len(s.values))
	for v, x := range s.values {
		out[v] = x
	}
	return out
}

// Dual returns the dual value for the constraint description, when the
// engine exposed duals.
func (s *Solution) Dual(constraint string) (float64, bool) {
	x, ok := s.duals[constraint]
	return x, ok
}

// Result is the immutable record of one solve attempt: canonical status,
// measured durations, a snapshot of the parameters the attempt ran with,
// and the solution when one was found.
type Result struct {
	status    Status
	durations Durations
	params    *params.Params
	solution  *Solution
}

// NewResult builds a result, snapshotting the parameter state. A
// feasible-found status must be accompanied by a solution; a violation is
// an adapter bug, not a user error, and panics.
func NewResult(status Status, durations Durations, p *params.Params, sol *Solution) Result {
	if status.FoundFeasible() && sol == nil {
		panic(fmt.Sprintf("solve: status %q reported without a solution", status))
	}
	var snap *params.Params
	if p != nil {
		snap = p.Clone()
	} else {
		snap = params.New()
	}
	return Result{status: status, durations: durations, params: snap, solution: sol}
}

func (r Result) Status() Status {
	return r.status
}

func (r Result) Durations() Durations {
	return r.durations
}

// Params returns the parameter snapshot the attempt ran with.
func (r Result) Params() *params.Params {
	return r.params
}

// Solution returns the feasible point, when one was found.
func (r Result) Solution() (*Solution, bool) {
	return r.solution, r.solution != nil
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%s)", r.status, r.durations)
}
