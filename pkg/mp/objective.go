package mp

import "fmt"

// Sense is the optimization direction of an objective.
type Sense int

const (
	Max Sense = iota
	Min
)

func (s Sense) String() string {
	switch s {
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return fmt.Sprintf("sense(%d)", int(s))
}

// Objective is an immutable linear objective. The canonical "no objective"
// sentinel is the pair (empty sum, Max): the constructor normalizes the
// sense to Max whenever the function is empty so equality of the sentinel
// is stable regardless of the sense it was requested with.
type Objective struct {
	fn    SumTerms
	sense Sense
}

// NewObjective returns the objective "sense fn". An empty function is
// permitted and represents the absence of an objective.
func NewObjective(fn SumTerms, sense Sense) Objective {
	if fn.IsEmpty() {
		return Objective{sense: Max}
	}
	return Objective{fn: fn, sense: sense}
}

// Zero is the canonical no-objective sentinel.
func Zero() Objective {
	return Objective{sense: Max}
}

// Function returns the objective expression.
func (o Objective) Function() SumTerms {
	return o.fn
}

func (o Objective) Sense() Sense {
	return o.sense
}

// IsZero reports whether there is no objective function. It is true for an
// empty function regardless of sense.
func (o Objective) IsZero() bool {
	return o.fn.IsEmpty()
}

func (o Objective) Equal(other Objective) bool {
	return o.sense == other.sense && o.fn.Equal(other.fn)
}

func (o Objective) String() string {
	if o.IsZero() {
		return "no objective"
	}
	return fmt.Sprintf("%s %s", o.sense, o.fn)
}
