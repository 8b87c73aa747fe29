package solve

import "fmt"

// Status is the canonical, engine-independent classification of a solve
// attempt. Engines report their own codes; Canonicalize normalizes them
// into this taxonomy.
type Status int

const (
	StatusOptimal Status = iota
	// StatusFeasible covers both a solution without an objective to
	// optimize and engines that cannot distinguish the two situations.
	StatusFeasible
	StatusInfeasible
	// StatusInfeasibleOrUnbounded is for engines that could not resolve
	// infeasible from unbounded; distinct from confirmed StatusInfeasible.
	StatusInfeasibleOrUnbounded
	StatusUnbounded
	StatusTimeLimitWithSolution
	StatusTimeLimitNoSolution
	StatusMemLimitWithSolution
	StatusMemLimitNoSolution
	StatusErrorWithSolution
	StatusErrorNoSolution
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusInfeasibleOrUnbounded:
		return "infeasible or unbounded"
	case StatusUnbounded:
		return "unbounded"
	case StatusTimeLimitWithSolution:
		return "time limit reached, solution found"
	case StatusTimeLimitNoSolution:
		return "time limit reached, no solution"
	case StatusMemLimitWithSolution:
		return "memory limit reached, solution found"
	case StatusMemLimitNoSolution:
		return "memory limit reached, no solution"
	case StatusErrorWithSolution:
		return "error, solution found"
	case StatusErrorNoSolution:
		return "error, no solution"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// FoundFeasible reports whether the solve produced a feasible point.
func (s Status) FoundFeasible() bool {
	switch s {
	case StatusOptimal, StatusFeasible,
		StatusTimeLimitWithSolution, StatusMemLimitWithSolution, StatusErrorWithSolution:
		return true
	}
	return false
}

// Class is an engine adapter's classification of its native status code.
// Adapters that cannot classify a code leave ClassUnknown, which
// Canonicalize folds into the error states so an unrecognized backend code
// can never crash the adapter layer.
type Class int

const (
	ClassUnknown Class = iota
	ClassOptimal
	ClassFeasible
	ClassInfeasible
	ClassInfeasibleOrUnbounded
	ClassUnbounded
	ClassTimeLimit
	ClassMemLimit
	ClassError
)

func (c Class) String() string {
	switch c {
	case ClassUnknown:
		return "unknown"
	case ClassOptimal:
		return "optimal"
	case ClassFeasible:
		return "feasible"
	case ClassInfeasible:
		return "infeasible"
	case ClassInfeasibleOrUnbounded:
		return "infeasible or unbounded"
	case ClassUnbounded:
		return "unbounded"
	case ClassTimeLimit:
		return "time limit"
	case ClassMemLimit:
		return "memory limit"
	case ClassError:
		return "error"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Canonicalize maps a raw engine outcome into the canonical taxonomy. There
// is exactly one transition per solve, no retries at this layer.
//
// An engine reporting "solved to optimality" maps to StatusOptimal only
// when the bound objective is complete; engines report "optimal" even for a
// zero-objective search for any feasible point, which canonicalizes to
// StatusFeasible. Everything the adapter could not classify falls back to
// the error states, split solely on whether a solution was attached.
func Canonicalize(out Outcome, objectiveComplete bool) Status {
	switch out.Class {
	case ClassOptimal:
		if objectiveComplete {
			return StatusOptimal
		}
		return StatusFeasible
	case ClassFeasible:
		return StatusFeasible
	case ClassInfeasible:
		return StatusInfeasible
	case ClassInfeasibleOrUnbounded:
		return StatusInfeasibleOrUnbounded
	case ClassUnbounded:
		return StatusUnbounded
	case ClassTimeLimit:
		if out.HasSolution {
			return StatusTimeLimitWithSolution
		}
		return StatusTimeLimitNoSolution
	case ClassMemLimit:
		if out.HasSolution {
			return StatusMemLimitWithSolution
		}
		return StatusMemLimitNoSolution
	}
	if out.HasSolution {
		return StatusErrorWithSolution
	}
	return StatusErrorNoSolution
}
