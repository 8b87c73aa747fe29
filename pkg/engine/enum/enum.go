// Package enum is a reference engine that exhaustively enumerates the
// finite integer box of a program. It exists for tests, examples and tiny
// programs: real workloads go to a native engine binding. Enumeration is
// deterministic and single-threaded regardless of the parallelism
// parameters.
package enum

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/params"
	"github.com/optomata/gomp/pkg/solve"
)

// Native result codes.
const (
	codeOptimal    = 0
	codeInfeasible = 1
	codeTimeLimit  = 2
)

// maxStates caps the size of the box the engine will walk.
const maxStates = 50_000_000

type Engine struct {
	log *zap.Logger
}

type Option func(*Engine)

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Name() string {
	return "enum"
}

func (e *Engine) Solve(ctx context.Context, program mp.View, cfg solve.Config) (solve.Outcome, error) {
	vars := program.Variables()
	lows := make([]int, len(vars))
	sizes := make([]int, len(vars))
	states := 1.0
	for i, v := range vars {
		if program.KindOf(v) == mp.RealKind {
			return solve.Outcome{}, &params.UnsupportedError{
				Feature: fmt.Sprintf("real variable %q on an integer enumeration engine", v.Description()),
			}
		}
		b := v.Bounds()
		if math.IsInf(b.Lower(), -1) || math.IsInf(b.Upper(), 1) {
			return solve.Outcome{}, &params.UnsupportedError{
				Feature: fmt.Sprintf("unbounded variable %q, enumeration needs a finite box", v.Description()),
			}
		}
		lows[i] = int(math.Ceil(b.Lower()))
		sizes[i] = int(math.Floor(b.Upper())) - lows[i] + 1
		states *= float64(sizes[i])
		if states > maxStates {
			return solve.Outcome{}, &params.UnsupportedError{
				Feature: fmt.Sprintf("search box of %g states exceeds the enumeration cap", states),
			}
		}
	}

	constraints := program.Constraints()
	objective := program.Objective()
	maximize := objective.Sense() == mp.Max

	var deadline time.Time
	limit := cfg.WallLimitSecs
	if cfg.Timing == params.CPUTiming && !math.IsInf(cfg.CPULimitSecs, 1) {
		limit = cfg.CPULimitSecs
	}
	if !math.IsInf(limit, 1) {
		deadline = time.Now().Add(time.Duration(limit * float64(time.Second)))
	}

	cursor := make([]int, len(vars))
	assignment := make(map[mp.Variable]float64, len(vars))
	var best map[mp.Variable]float64
	bestObj := 0.0
	found := false
	visited := 0

	for {
		if visited%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return solve.Outcome{}, err
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				e.log.Debug("enumeration hit the time limit", zap.Int("visited", visited))
				out := solve.Outcome{Code: codeTimeLimit, Class: solve.ClassTimeLimit}
				if found {
					out.HasSolution = true
					out.Objective = bestObj
					out.Values = best
				}
				return out, nil
			}
		}
		visited++

		for i, v := range vars {
			assignment[v] = float64(lows[i] + cursor[i])
		}
		if feasible(constraints, assignment) {
			obj := objective.Function().Evaluate(assignment)
			if !found || better(maximize, obj, bestObj) {
				found = true
				bestObj = obj
				best = make(map[mp.Variable]float64, len(assignment))
				for v, x := range assignment {
					best[v] = x
				}
				if objective.IsZero() {
					// Any feasible point is as good as any other.
					break
				}
			}
		}
		if !advance(cursor, sizes) {
			break
		}
	}

	if !found {
		return solve.Outcome{Code: codeInfeasible, Class: solve.ClassInfeasible}, nil
	}
	return solve.Outcome{
		Code:        codeOptimal,
		Class:       solve.ClassOptimal,
		HasSolution: true,
		Objective:   bestObj,
		Values:      best,
	}, nil
}

func feasible(constraints []mp.Constraint, assignment map[mp.Variable]float64) bool {
	for _, c := range constraints {
		if !c.Satisfied(assignment) {
			return false
		}
	}
	return true
}

func better(maximize bool, candidate, incumbent float64) bool {
	if maximize {
		return candidate > incumbent
	}
	return candidate < incumbent
}

// advance steps the mixed-radix cursor, reporting false once it wraps.
func advance(cursor, sizes []int) bool {
	for i := 0; i < len(cursor); i++ {
		cursor[i]++
		if cursor[i] < sizes[i] {
			return true
		}
		cursor[i] = 0
	}
	return false
}
