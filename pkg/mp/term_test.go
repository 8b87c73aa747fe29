package mp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func term(t *testing.T, coef float64, v Variable) Term {
	t.Helper()
	tm, err := NewTerm(coef, v)
	require.NoError(t, err)
	return tm
}

func TestNewTermValidation(t *testing.T) {
	x := variable(t, "x", IntegerDomain, 0, 1)
	for _, tt := range []struct {
		name string
		coef float64
		v    Variable
		ok   bool
	}{
		{"finite coefficient", 2.5, x, true},
		{"zero coefficient", 0, x, true},
		{"nan coefficient", math.NaN(), x, false},
		{"infinite coefficient", math.Inf(1), x, false},
		{"zero variable", 1, Variable{}, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTerm(tt.coef, tt.v)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				var argErr *ArgumentError
				assert.ErrorAs(t, err, &argErr)
			}
		})
	}
}

func TestSumTermsOrderAndDuplicates(t *testing.T) {
	x := variable(t, "x", IntegerDomain, 0, 1)
	y := variable(t, "y", IntegerDomain, 0, 1)

	s := NewSum(term(t, 1, x), term(t, 2, y), term(t, 3, x))
	assert.Equal(t, 3, s.Len())
	// Duplicate-variable terms stay separate additive contributions, and
	// Variables yields them in term order.
	assert.Equal(t, []Variable{x, y, x}, s.Variables())
	assert.Equal(t, 4*1.0+2*1.0, s.Evaluate(map[Variable]float64{x: 1, y: 1}))
}

func TestSumTermsEqualityIsOrderSensitive(t *testing.T) {
	x := variable(t, "x", IntegerDomain, 0, 1)
	y := variable(t, "y", IntegerDomain, 0, 1)
	tx, ty := term(t, 1, x), term(t, 1, y)

	assert.True(t, NewSum(tx, ty).Equal(NewSum(tx, ty)))
	assert.False(t, NewSum(tx, ty).Equal(NewSum(ty, tx)))
	assert.False(t, NewSum(tx).Equal(NewSum(tx, tx)))
	assert.True(t, NewSum().Equal(NewSum()))
}

func TestSumTermsCopies(t *testing.T) {
	x := variable(t, "x", IntegerDomain, 0, 1)
	in := []Term{term(t, 1, x)}
	s := NewSum(in...)
	in[0] = term(t, 9, x)
	assert.Equal(t, 1.0, s.Terms()[0].Coefficient(), "the sum owns its terms")
}
