package solve

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/params"
)

// Solver is the facade tying one program, one parameter store and one
// engine together for synchronous, single-threaded solve calls. It hands
// the engine an immutable snapshot of the program, measures durations, and
// canonicalizes the raw outcome into a Result.
type Solver struct {
	engine Engine
	params *params.Params
	log    *zap.Logger
	last   *Result
	handed bool
}

// Option configures a Solver at construction.
type Option func(*Solver)

// WithParams installs the parameter store the solver resolves settings
// from. The store remains owned by the caller and freely mutable between
// solve calls.
func WithParams(p *params.Params) Option {
	return func(s *Solver) {
		if p != nil {
			s.params = p
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Solver) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a solver over the given engine.
func New(engine Engine, opts ...Option) (*Solver, error) {
	if engine == nil {
		return nil, &StateError{Op: "new solver", Detail: "engine is nil"}
	}
	s := &Solver{
		engine: engine,
		params: params.New(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Params returns the solver's parameter store.
func (s *Solver) Params() *params.Params {
	return s.params
}

// Solve snapshots the program, invokes the engine once, and canonicalizes
// the outcome. Parameter conflicts and unsupported settings surface as
// typed errors before the engine is touched; an engine failure is wrapped
// in an EngineError and never swallowed. There is no retry at this layer.
func (s *Solver) Solve(ctx context.Context, program *mp.MP) (Result, error) {
	if s.handed {
		return Result{}, &StateError{Op: "solve", Detail: "engine control was handed over, the solver no longer owns its state"}
	}
	if program == nil {
		return Result{}, &StateError{Op: "solve", Detail: "program is nil"}
	}
	timing, err := s.params.PreferredTimingType()
	if err != nil {
		return Result{}, err
	}
	cfg := Config{
		Timing:        timing,
		WallLimitSecs: s.params.GetDouble(params.MaxWallSeconds),
		CPULimitSecs:  s.params.GetDouble(params.MaxCPUSeconds),
		MaxTreeSizeMB: s.params.GetDouble(params.MaxTreeSizeMB),
		MaxMemoryMB:   s.params.GetDouble(params.MaxMemoryMB),
		Threads:       s.params.GetInt(params.MaxThreads),
		Deterministic: s.params.GetInt(params.Deterministic) == 1,
		WorkDir:       s.params.GetString(params.WorkDir),
	}

	snapshot := program.Clone()
	view := mp.ReadOnly(snapshot)
	dim := snapshot.Dimension()
	s.log.Debug("dispatching program to engine",
		zap.String("engine", s.engine.Name()),
		zap.String("program", snapshot.Name()),
		zap.Stringer("dimension", dim),
		zap.Stringer("timing", timing),
	)

	start := time.Now()
	cpuBefore, cpuOK := params.CPUTime()
	outcome, err := s.engine.Solve(ctx, view, cfg)
	durations := Durations{Wall: time.Since(start)}
	if cpuOK {
		if cpuAfter, ok := params.CPUTime(); ok {
			durations.CPU = cpuAfter - cpuBefore
			durations.HasCPU = true
		}
	}
	if err != nil {
		wrapped := &EngineError{Engine: s.engine.Name(), Err: err}
		s.log.Error("engine failed", zap.String("engine", s.engine.Name()), zap.Error(err))
		return Result{}, wrapped
	}

	status := Canonicalize(outcome, !snapshot.Objective().IsZero())
	var sol *Solution
	if outcome.HasSolution {
		sol, err = NewSolution(snapshot, outcome.Objective, outcome.Values, outcome.Duals)
		if err != nil {
			wrapped := &EngineError{Engine: s.engine.Name(), Err: err}
			s.log.Error("engine returned an unusable solution", zap.String("engine", s.engine.Name()), zap.Error(err))
			return Result{}, wrapped
		}
	}

	result := NewResult(status, durations, s.params, sol)
	s.last = &result
	s.log.Info("solve finished",
		zap.String("engine", s.engine.Name()),
		zap.Stringer("status", status),
		zap.Int("nativeCode", outcome.Code),
		zap.Duration("wall", durations.Wall),
		zap.Bool("foundFeasible", status.FoundFeasible()),
	)
	return result, nil
}

// Result returns the record of the last solve attempt. Calling it before
// any attempt completed is a state-precondition violation.
func (s *Solver) Result() (Result, error) {
	if s.last == nil {
		return Result{}, &StateError{Op: "result", Detail: "no solve attempt has completed"}
	}
	return *s.last, nil
}

// Handover surrenders the engine handle for manual out-of-band tweaking.
// It is one-way: after the handover the solver can no longer guarantee
// consistency between its parameters and the engine's state, so further
// Solve calls fail with a StateError. This is a documented usage
// discipline, not a lock.
func (s *Solver) Handover() Engine {
	s.handed = true
	s.log.Warn("engine control handed over", zap.String("engine", s.engine.Name()))
	return s.engine
}
