package solve

import (
	"context"
	"fmt"

	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/params"
)

// Config carries the resolved parameter values an engine receives for one
// solve. Limits read +Inf when unlimited; engines enforce whichever limits
// are finite and report the corresponding limit classes back.
type Config struct {
	Timing          params.TimingType
	WallLimitSecs   float64
	CPULimitSecs    float64
	MaxTreeSizeMB   float64
	MaxMemoryMB     float64
	Threads         int
	Deterministic   bool
	WorkDir         string
}

// Outcome is the raw result an engine adapter hands back: its native
// status code, the adapter's classification of that code, and, when
// available, a primal value per variable plus the objective value.
// Duals, when the engine exposes them, are keyed by constraint
// description.
type Outcome struct {
	Code        int
	Class       Class
	HasSolution bool
	Objective   float64
	Values      map[mp.Variable]float64
	Duals       map[string]float64
}

// Engine is the narrow boundary to an external solving backend: accept an
// immutable program view and resolved parameters, return a raw outcome.
// The call is synchronous; timeouts travel through Config and are honored
// by the engine itself. Implementations must not retain or mutate the
// view.
type Engine interface {
	Name() string
	Solve(ctx context.Context, program mp.View, cfg Config) (Outcome, error)
}

// StateError reports an operation invoked before its prerequisite state
// exists, or after a capability was handed away.
type StateError struct {
	Op     string
	Detail string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// EngineError wraps a failure raised by the external engine itself. The
// cause is attached opaquely; the core never interprets engine-internal
// detail and never retries.
type EngineError struct {
	Engine string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s failed: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
