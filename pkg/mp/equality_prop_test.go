package mp

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func mkVar(name string, lo, size int, integer bool) Variable {
	domain := RealDomain
	if integer {
		domain = IntegerDomain
	}
	b, err := NewBounds(float64(lo), float64(lo+size))
	if err != nil {
		panic(err)
	}
	v, err := NewVariable(name, domain, b)
	if err != nil {
		panic(err)
	}
	return v
}

func mkConstraint(desc string, coef float64, v Variable, op Operator, rhs int) Constraint {
	tm, err := NewTerm(coef, v)
	if err != nil {
		panic(err)
	}
	c, err := NewConstraint(desc, NewSum(tm), op, float64(rhs))
	if err != nil {
		panic(err)
	}
	return c
}

var (
	genName = gen.OneConstOf("x", "y", "z", "slack")
	genLo   = gen.IntRange(-3, 3)
	genSize = gen.IntRange(0, 4)
	genOp   = gen.OneConstOf(LE, EQ, GE)
	genCoef = gen.OneConstOf(-2.0, -1.0, 0.5, 1.0, 3.0)
	genRHS  = gen.IntRange(-10, 10)
)

func TestVariableEqualityLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("independently constructed equals are equal", prop.ForAll(
		func(name string, lo, size int, integer bool) bool {
			return mkVar(name, lo, size, integer) == mkVar(name, lo, size, integer)
		},
		genName, genLo, genSize, gen.Bool(),
	))

	properties.Property("equality is symmetric", prop.ForAll(
		func(n1, n2 string, lo1, lo2, s1, s2 int, i1, i2 bool) bool {
			a := mkVar(n1, lo1, s1, i1)
			b := mkVar(n2, lo2, s2, i2)
			return (a == b) == (b == a)
		},
		genName, genName, genLo, genLo, genSize, genSize, gen.Bool(), gen.Bool(),
	))

	properties.Property("equal variables collide as map keys", prop.ForAll(
		func(name string, lo, size int, integer bool) bool {
			m := map[Variable]struct{}{}
			m[mkVar(name, lo, size, integer)] = struct{}{}
			m[mkVar(name, lo, size, integer)] = struct{}{}
			return len(m) == 1
		},
		genName, genLo, genSize, gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestConstraintEqualityLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("equality is reflexive", prop.ForAll(
		func(desc string, coef float64, name string, lo, size int, op Operator, rhs int) bool {
			c := mkConstraint(desc, coef, mkVar(name, lo, size, true), op, rhs)
			return c.Equal(c)
		},
		gen.OneConstOf("c1", "c2"), genCoef, genName, genLo, genSize, genOp, genRHS,
	))

	properties.Property("independently constructed equals are equal", prop.ForAll(
		func(desc string, coef float64, name string, lo, size int, op Operator, rhs int) bool {
			v := mkVar(name, lo, size, true)
			a := mkConstraint(desc, coef, v, op, rhs)
			b := mkConstraint(desc, coef, v, op, rhs)
			return a.Equal(b) && b.Equal(a) && a.String() == b.String()
		},
		gen.OneConstOf("c1", "c2"), genCoef, genName, genLo, genSize, genOp, genRHS,
	))

	properties.Property("equality is transitive across copies", prop.ForAll(
		func(desc string, coef float64, name string, lo, size int, op Operator, rhs int) bool {
			v := mkVar(name, lo, size, true)
			a := mkConstraint(desc, coef, v, op, rhs)
			b := mkConstraint(desc, coef, v, op, rhs)
			c := mkConstraint(desc, coef, v, op, rhs)
			return a.Equal(b) && b.Equal(c) && a.Equal(c)
		},
		gen.OneConstOf("c1", "c2"), genCoef, genName, genLo, genSize, genOp, genRHS,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
