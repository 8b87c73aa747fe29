package mp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds(t *testing.T, lo, hi float64) Bounds {
	t.Helper()
	b, err := NewBounds(lo, hi)
	require.NoError(t, err)
	return b
}

func variable(t *testing.T, name string, domain Domain, lo, hi float64, refs ...interface{}) Variable {
	t.Helper()
	v, err := NewVariable(name, domain, bounds(t, lo, hi), refs...)
	require.NoError(t, err)
	return v
}

func TestKindDerivation(t *testing.T) {
	for _, tt := range []struct {
		name   string
		domain Domain
		lo, hi float64
		kind   Kind
	}{
		{"integer [0,1] is bool", IntegerDomain, 0, 1, BoolKind},
		{"integer [-1,1] is int", IntegerDomain, -1, 1, IntKind},
		{"integer [0,2] is int", IntegerDomain, 0, 2, IntKind},
		{"real [0,1] is real, not bool", RealDomain, 0, 1, RealKind},
		{"unbounded integer is int", IntegerDomain, math.Inf(-1), math.Inf(1), IntKind},
		{"unbounded real is real", RealDomain, math.Inf(-1), math.Inf(1), RealKind},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.domain, bounds(t, tt.lo, tt.hi)))
		})
	}
}

func TestNewBoundsValidation(t *testing.T) {
	for _, tt := range []struct {
		name   string
		lo, hi float64
		ok     bool
	}{
		{"plain interval", -1, 1, true},
		{"degenerate interval", 3, 3, true},
		{"open at both infinities", math.Inf(-1), math.Inf(1), true},
		{"lower above upper", 2, 1, false},
		{"nan lower", math.NaN(), 1, false},
		{"nan upper", 0, math.NaN(), false},
		{"huge sentinel upper", 0, Huge, false},
		{"negated huge sentinel lower", -Huge, 0, false},
		{"just below the sentinel", 0, Huge / 2, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBounds(tt.lo, tt.hi)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				var argErr *ArgumentError
				assert.ErrorAs(t, err, &argErr)
			}
		})
	}
}

func TestNewVariableValidation(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := NewVariable("", RealDomain, Unbounded())
		var argErr *ArgumentError
		assert.ErrorAs(t, err, &argErr)
	})
	t.Run("integer interval without an integer", func(t *testing.T) {
		_, err := NewVariable("x", IntegerDomain, bounds(t, 0.2, 0.8))
		var argErr *ArgumentError
		assert.ErrorAs(t, err, &argErr)
	})
	t.Run("fractional integer interval containing zero", func(t *testing.T) {
		v, err := NewVariable("x", IntegerDomain, bounds(t, -0.5, 0.5))
		require.NoError(t, err)
		assert.Equal(t, IntKind, v.Kind())
	})
	t.Run("real interval without an integer is fine", func(t *testing.T) {
		_, err := NewVariable("x", RealDomain, bounds(t, 0.2, 0.8))
		assert.NoError(t, err)
	})
}

func TestVariableDescription(t *testing.T) {
	plain := variable(t, "x", IntegerDomain, 0, 1)
	assert.Equal(t, "x", plain.Description())
	assert.Empty(t, plain.ReferencesJSON())

	withRefs := variable(t, "route", RealDomain, 0, 10, "depot", 42)
	assert.Equal(t, "route(depot, 42)", withRefs.Description())
	assert.Equal(t, []string{"depot", "42"}, withRefs.References())
	assert.JSONEq(t, `["depot","42"]`, withRefs.ReferencesJSON())
}

func TestVariableEquality(t *testing.T) {
	a := variable(t, "x", IntegerDomain, 0, 1)
	b := variable(t, "x", IntegerDomain, 0, 1)
	c := variable(t, "x", IntegerDomain, 0, 2)
	d := variable(t, "x", RealDomain, 0, 1)

	assert.True(t, a == b)
	assert.False(t, a == c, "same description, different bounds")
	assert.False(t, a == d, "same description and bounds, different kind")

	// Equal variables constructed independently collapse to one map key.
	seen := map[Variable]int{}
	seen[a]++
	seen[b]++
	seen[c]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[a])
}
