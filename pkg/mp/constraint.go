package mp

import (
	"fmt"
	"math"
)

// Operator is the comparison relating a constraint's left-hand side to its
// right-hand side.
type Operator int

const (
	LE Operator = iota
	EQ
	GE
)

func (o Operator) String() string {
	switch o {
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Compare reports whether lhs op rhs holds.
func (o Operator) Compare(lhs, rhs float64) bool {
	switch o {
	case LE:
		return lhs <= rhs
	case EQ:
		return lhs == rhs
	case GE:
		return lhs >= rhs
	}
	return false
}

// Constraint is an immutable linear constraint: lhs op rhs, labelled with a
// description. The description participates in equality, so two
// structurally identical inequalities with different labels are distinct.
// Descriptions are recommended, not forced, to be unique within one
// program so constraints can be looked up by label.
type Constraint struct {
	desc string
	lhs  SumTerms
	op   Operator
	rhs  float64
}

// NewConstraint validates and returns the constraint "desc: lhs op rhs".
// The left-hand side must be non-empty and the right-hand side finite.
func NewConstraint(desc string, lhs SumTerms, op Operator, rhs float64) (Constraint, error) {
	if lhs.IsEmpty() {
		return Constraint{}, argErrf("new constraint", "left-hand side of %q is empty", desc)
	}
	if op != LE && op != EQ && op != GE {
		return Constraint{}, argErrf("new constraint", "unknown operator %d in %q", int(op), desc)
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return Constraint{}, argErrf("new constraint", "right-hand side %g of %q is not finite", rhs, desc)
	}
	return Constraint{desc: desc, lhs: lhs, op: op, rhs: rhs}, nil
}

func (c Constraint) Description() string { return c.desc }
func (c Constraint) Operator() Operator  { return c.op }
func (c Constraint) RHS() float64        { return c.rhs }

// LHS returns the left-hand side expression.
func (c Constraint) LHS() SumTerms {
	return c.lhs
}

// IsZero reports whether c is the zero value, which never denotes a usable
// constraint.
func (c Constraint) IsZero() bool {
	return c.lhs.IsEmpty()
}

// Equal compares description, left-hand side, operator and right-hand side.
func (c Constraint) Equal(o Constraint) bool {
	return c.desc == o.desc && c.op == o.op && c.rhs == o.rhs && c.lhs.Equal(o.lhs)
}

// Satisfied reports whether the constraint holds under the assignment.
func (c Constraint) Satisfied(assignment map[Variable]float64) bool {
	return c.op.Compare(c.lhs.Evaluate(assignment), c.rhs)
}

func (c Constraint) String() string {
	if c.desc == "" {
		return fmt.Sprintf("%s %s %g", c.lhs, c.op, c.rhs)
	}
	return fmt.Sprintf("%s: %s %s %g", c.desc, c.lhs, c.op, c.rhs)
}
