// Package sat binds programs whose every variable is boolean to the gini
// SAT solver. Constraints must use ±1 coefficients; each one becomes a
// cardinality window over its term literals. The engine decides
// satisfiability only: a program carrying an objective is rejected as
// unsupported, and a satisfiable program is reported with the engine's
// native "optimal" code, which canonicalizes to a feasible point for the
// zero objective.
package sat

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"go.uber.org/zap"

	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/params"
	"github.com/optomata/gomp/pkg/solve"
)

// Native result codes, following gini's solve results.
const (
	codeSat     = 1
	codeUnknown = 0
	codeUnsat   = -1
)

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
	return "gini-sat"
}

func (e *Engine) Solve(ctx context.Context, program mp.View, cfg solve.Config) (solve.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return solve.Outcome{}, err
	}
	if !program.Objective().IsZero() {
		return solve.Outcome{}, &params.UnsupportedError{Feature: "objective optimization on a satisfiability engine"}
	}
	for _, v := range program.Variables() {
		if program.KindOf(v) != mp.BoolKind {
			return solve.Outcome{}, &params.UnsupportedError{
				Feature: fmt.Sprintf("non-boolean variable %q (%s)", v.Description(), program.KindOf(v)),
			}
		}
	}

	lm := newLitMap(program)
	var assumptions []z.Lit
	for _, c := range program.Constraints() {
		ms, err := encode(lm, c)
		if err != nil {
			return solve.Outcome{}, err
		}
		if ms == trivialUnsat {
			e.log.Debug("constraint is trivially unsatisfiable", zap.String("constraint", c.String()))
			return solve.Outcome{Code: codeUnsat, Class: solve.ClassInfeasible}, nil
		}
		if ms != z.LitNull {
			assumptions = append(assumptions, ms)
		}
	}

	g := gini.New()
	lm.addClauses(g)
	g.Assume(assumptions...)

	limit := cfg.WallLimitSecs
	if cfg.Timing == params.CPUTiming && !math.IsInf(cfg.CPULimitSecs, 1) {
		limit = cfg.CPULimitSecs
	}
	var res int
	if math.IsInf(limit, 1) {
		res = g.Solve()
	} else {
		res = g.Try(time.Duration(limit * float64(time.Second)))
	}

	switch res {
	case codeSat:
		return solve.Outcome{
			Code:        codeSat,
			Class:       solve.ClassOptimal,
			HasSolution: true,
			Values:      lm.assignment(g),
		}, nil
	case codeUnsat:
		return solve.Outcome{Code: codeUnsat, Class: solve.ClassInfeasible}, nil
	}
	return solve.Outcome{Code: codeUnknown, Class: solve.ClassTimeLimit}, nil
}

// trivialUnsat marks a constraint no assignment can satisfy. It never
// collides with a real literal.
var trivialUnsat = z.Lit(^uint32(0))

// encode turns one ±1-coefficient constraint into a literal to assume.
// Negative terms are rewritten over negated literals, shifting the bound:
// sum(+x) - sum(y) op b becomes sum(+x) + sum(¬y) op b + |y|. LitNull means
// the constraint holds for every assignment.
func encode(lm *litMap, c mp.Constraint) (z.Lit, error) {
	terms := c.LHS().Terms()
	ms := make([]z.Lit, 0, len(terms))
	shift := 0.0
	for _, t := range terms {
		switch t.Coefficient() {
		case 1:
			ms = append(ms, lm.litOf(t.Variable()))
		case -1:
			ms = append(ms, lm.litOf(t.Variable()).Not())
			shift++
		default:
			return z.LitNull, &params.UnsupportedError{
				Feature: fmt.Sprintf("coefficient %g in constraint %q, the sat engine accepts ±1 only", t.Coefficient(), c.Description()),
			}
		}
	}
	bound := c.RHS() + shift
	n := len(ms)
	switch c.Operator() {
	case mp.LE:
		ub := int(math.Floor(bound))
		if ub < 0 {
			return trivialUnsat, nil
		}
		if ub >= n {
			return z.LitNull, nil
		}
		return lm.c.CardSort(ms).Leq(ub), nil
	case mp.GE:
		lb := int(math.Ceil(bound))
		if lb <= 0 {
			return z.LitNull, nil
		}
		if lb > n {
			return trivialUnsat, nil
		}
		return lm.c.CardSort(ms).Geq(lb), nil
	}
	// Equality: an integral left-hand side can never equal a fractional
	// bound.
	if math.Floor(bound) != bound {
		return trivialUnsat, nil
	}
	k := int(bound)
	if k < 0 || k > n {
		return trivialUnsat, nil
	}
	card := lm.c.CardSort(ms)
	lits := make([]z.Lit, 0, 2)
	if k < n {
		lits = append(lits, card.Leq(k))
	}
	if k > 0 {
		lits = append(lits, card.Geq(k))
	}
	switch len(lits) {
	case 0:
		return z.LitNull, nil
	case 1:
		return lits[0], nil
	}
	return lm.c.Ands(lits...), nil
}
