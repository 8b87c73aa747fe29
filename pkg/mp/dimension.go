package mp

import "fmt"

// Dimension is an immutable per-kind census of a program at the moment it
// was taken, not a live view.
type Dimension struct {
	booleans    int
	integers    int
	reals       int
	constraints int
}

// Booleans counts the variables of boolean kind.
func (d Dimension) Booleans() int { return d.booleans }

// Integers counts the variables of non-boolean integer kind.
func (d Dimension) Integers() int { return d.integers }

// Reals counts the variables of real kind.
func (d Dimension) Reals() int { return d.reals }

func (d Dimension) Constraints() int { return d.constraints }

// Variables counts all variables regardless of kind.
func (d Dimension) Variables() int {
	return d.booleans + d.integers + d.reals
}

func (d Dimension) String() string {
	return fmt.Sprintf("%d bool, %d int, %d real, %d constraints",
		d.booleans, d.integers, d.reals, d.constraints)
}
