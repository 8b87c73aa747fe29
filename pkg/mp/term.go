package mp

import (
	"fmt"
	"math"
	"strings"
)

// Term is an immutable (coefficient, variable) pair. Term is a comparable
// value type.
type Term struct {
	coef     float64
	variable Variable
}

// NewTerm validates and returns coefficient × variable.
func NewTerm(coef float64, v Variable) (Term, error) {
	if math.IsNaN(coef) || math.IsInf(coef, 0) {
		return Term{}, argErrf("new term", "coefficient %g is not finite", coef)
	}
	if v.IsZero() {
		return Term{}, argErrf("new term", "variable is the zero value")
	}
	return Term{coef: coef, variable: v}, nil
}

func (t Term) Coefficient() float64 { return t.coef }
func (t Term) Variable() Variable   { return t.variable }

func (t Term) String() string {
	return fmt.Sprintf("%g %s", t.coef, t.variable.desc)
}

// SumTerms is an ordered, possibly empty sequence of terms, i.e. a linear
// expression. Terms over the same variable are kept as separate additive
// contributions, never merged. Equality is order-sensitive list equality.
type SumTerms struct {
	terms []Term
}

// NewSum returns the ordered sum of the given terms. An empty sum is
// permitted here; Constraint rejects it where a non-empty left-hand side is
// required.
func NewSum(terms ...Term) SumTerms {
	if len(terms) == 0 {
		return SumTerms{}
	}
	owned := make([]Term, len(terms))
	copy(owned, terms)
	return SumTerms{terms: owned}
}

func (s SumTerms) Len() int {
	return len(s.terms)
}

func (s SumTerms) IsEmpty() bool {
	return len(s.terms) == 0
}

// Terms returns a copy of the term sequence.
func (s SumTerms) Terms() []Term {
	if len(s.terms) == 0 {
		return nil
	}
	out := make([]Term, len(s.terms))
	copy(out, s.terms)
	return out
}

// Variables yields the term variables in term order, with duplicates when a
// variable appears in more than one term.
func (s SumTerms) Variables() []Variable {
	if len(s.terms) == 0 {
		return nil
	}
	out := make([]Variable, len(s.terms))
	for i, t := range s.terms {
		out[i] = t.variable
	}
	return out
}

func (s SumTerms) Equal(o SumTerms) bool {
	if len(s.terms) != len(o.terms) {
		return false
	}
	for i := range s.terms {
		if s.terms[i] != o.terms[i] {
			return false
		}
	}
	return true
}

// Evaluate computes the sum under the given assignment. Variables missing
// from the assignment contribute zero.
func (s SumTerms) Evaluate(assignment map[Variable]float64) float64 {
	total := 0.0
	for _, t := range s.terms {
		total += t.coef * assignment[t.variable]
	}
	return total
}

func (s SumTerms) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
