package mp

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Domain is the declared value domain of a variable. The effective Kind is
// derived from the domain and the bounds, see KindOf.
type Domain int

const (
	IntegerDomain Domain = iota
	RealDomain
)

func (d Domain) String() string {
	switch d {
	case IntegerDomain:
		return "integer"
	case RealDomain:
		return "real"
	}
	return fmt.Sprintf("domain(%d)", int(d))
}

// Kind classifies a variable for engine adapters deciding which native
// variable-type flag to emit.
type Kind int

const (
	BoolKind Kind = iota
	IntKind
	RealKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case RealKind:
		return "real"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Huge is the magnitude reserved by engine wire formats to represent an
// unbounded endpoint. Finite bound endpoints of exactly this magnitude are
// rejected; use ±Inf for unbounded intervals instead.
const Huge = 1e30

// Bounds is a closed interval of finite reals, optionally open at infinity
// on either side.
type Bounds struct {
	lower float64
	upper float64
}

// NewBounds validates and returns the interval [lower, upper].
func NewBounds(lower, upper float64) (Bounds, error) {
	for _, v := range []float64{lower, upper} {
		if math.IsNaN(v) {
			return Bounds{}, argErrf("new bounds", "endpoint is NaN")
		}
		if !math.IsInf(v, 0) && math.Abs(v) == Huge {
			return Bounds{}, argErrf("new bounds", "endpoint %g equals the reserved unbounded sentinel, use an infinite endpoint instead", v)
		}
	}
	if lower > upper {
		return Bounds{}, argErrf("new bounds", "lower bound %g exceeds upper bound %g", lower, upper)
	}
	return Bounds{lower: lower, upper: upper}, nil
}

// Unbounded is the interval (-Inf, +Inf).
func Unbounded() Bounds {
	return Bounds{lower: math.Inf(-1), upper: math.Inf(1)}
}

// NonNegative is the interval [0, +Inf).
func NonNegative() Bounds {
	return Bounds{lower: 0, upper: math.Inf(1)}
}

// ZeroOne is the interval [0, 1].
func ZeroOne() Bounds {
	return Bounds{lower: 0, upper: 1}
}

func (b Bounds) Lower() float64 { return b.lower }
func (b Bounds) Upper() float64 { return b.upper }

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.lower, b.upper)
}

// KindOf derives the effective kind of a variable. The derivation is
// domain-gated first: only within the integer domain do [0, 1] bounds make
// a variable boolean. A real-domain variable bounded to [0, 1] stays real.
func KindOf(domain Domain, bounds Bounds) Kind {
	if domain == IntegerDomain {
		if bounds.lower == 0 && bounds.upper == 1 {
			return BoolKind
		}
		return IntKind
	}
	return RealKind
}

// Variable is an immutable decision variable. Its identity is the
// description derived from the categorical name and the ordered reference
// values; identity is fixed for the lifetime of the value because it is
// later used as a map key in solutions. Variable is a comparable value
// type: two variables are equal iff their descriptions, kinds and bounds
// are equal.
type Variable struct {
	name   string
	refs   string // JSON array of reference values, "" when none
	domain Domain
	bounds Bounds
	desc   string
}

// NewVariable builds a variable from a categorical name and an ordered list
// of opaque reference values. The reference values participate in the
// description only; they carry no algebraic meaning.
func NewVariable(name string, domain Domain, bounds Bounds, refs ...interface{}) (Variable, error) {
	if name == "" {
		return Variable{}, argErrf("new variable", "name is empty")
	}
	if domain != IntegerDomain && domain != RealDomain {
		return Variable{}, argErrf("new variable", "unknown domain %d", int(domain))
	}
	if _, err := NewBounds(bounds.lower, bounds.upper); err != nil {
		return Variable{}, err
	}
	if domain == IntegerDomain && math.Ceil(bounds.lower) > math.Floor(bounds.upper) {
		return Variable{}, argErrf("new variable", "integer bounds %s contain no integer", bounds)
	}
	v := Variable{name: name, domain: domain, bounds: bounds}
	if len(refs) > 0 {
		parts := make([]string, len(refs))
		for i, r := range refs {
			parts[i] = fmt.Sprint(r)
		}
		raw, err := json.Marshal(parts)
		if err != nil {
			return Variable{}, argErrf("new variable", "unencodable references: %v", err)
		}
		v.refs = string(raw)
		v.desc = fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
	} else {
		v.desc = name
	}
	return v, nil
}

// NewBool builds an integer-domain variable bounded to [0, 1].
func NewBool(name string, refs ...interface{}) (Variable, error) {
	return NewVariable(name, IntegerDomain, ZeroOne(), refs...)
}

// NewInt builds an integer-domain variable with the given bounds.
func NewInt(name string, bounds Bounds, refs ...interface{}) (Variable, error) {
	return NewVariable(name, IntegerDomain, bounds, refs...)
}

// NewReal builds a real-domain variable with the given bounds.
func NewReal(name string, bounds Bounds, refs ...interface{}) (Variable, error) {
	return NewVariable(name, RealDomain, bounds, refs...)
}

func (v Variable) Name() string        { return v.name }
func (v Variable) Description() string { return v.desc }
func (v Variable) Domain() Domain      { return v.domain }
func (v Variable) Bounds() Bounds      { return v.bounds }

// Kind derives the effective kind from the domain and bounds.
func (v Variable) Kind() Kind {
	return KindOf(v.domain, v.bounds)
}

// ReferencesJSON returns the reference values as a JSON array, or the empty
// string when the variable carries none. Expression namers query this
// payload with JSONPath.
func (v Variable) ReferencesJSON() string {
	return v.refs
}

// References decodes the reference values. The returned slice is owned by
// the caller.
func (v Variable) References() []string {
	if v.refs == "" {
		return nil
	}
	var parts []string
	if err := json.Unmarshal([]byte(v.refs), &parts); err != nil {
		return nil
	}
	return parts
}

// IsZero reports whether v is the zero value, which never denotes a usable
// variable.
func (v Variable) IsZero() bool {
	return v.desc == ""
}

func (v Variable) String() string {
	return v.desc
}
