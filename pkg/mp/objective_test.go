package mp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroObjectiveUniqueness(t *testing.T) {
	// The sense of an empty objective normalizes to Max, so the sentinel is
	// unique regardless of the sense it was requested with.
	maxZero := NewObjective(NewSum(), Max)
	minZero := NewObjective(NewSum(), Min)

	assert.True(t, maxZero.Equal(minZero))
	assert.True(t, maxZero.Equal(Zero()))
	assert.True(t, minZero.IsZero())
	assert.Equal(t, Max, minZero.Sense())
}

func TestObjectiveEquality(t *testing.T) {
	x := variable(t, "x", IntegerDomain, 0, 1)
	fn := NewSum(term(t, 143, x))

	assert.True(t, NewObjective(fn, Max).Equal(NewObjective(fn, Max)))
	assert.False(t, NewObjective(fn, Max).Equal(NewObjective(fn, Min)))
	assert.False(t, NewObjective(fn, Max).IsZero())
	assert.False(t, NewObjective(fn, Max).Equal(Zero()))
}

func TestObjectiveString(t *testing.T) {
	x := variable(t, "x", IntegerDomain, 0, 1)
	assert.Equal(t, "no objective", Zero().String())
	assert.Equal(t, "min 2 x", NewObjective(NewSum(term(t, 2, x)), Min).String())
}
