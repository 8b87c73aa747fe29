package sat

import (
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/optomata/gomp/pkg/mp"
)

// litMap translates between program variables and the literals appearing
// in the SAT formula.
type litMap struct {
	c     *logic.C
	order []mp.Variable
	lits  map[mp.Variable]z.Lit
}

func newLitMap(view mp.View) *litMap {
	vars := view.Variables()
	lm := &litMap{
		c:     logic.NewCCap(len(vars)),
		order: vars,
		lits:  make(map[mp.Variable]z.Lit, len(vars)),
	}
	for _, v := range vars {
		lm.lits[v] = lm.c.Lit()
	}
	return lm
}

func (lm *litMap) litOf(v mp.Variable) z.Lit {
	return lm.lits[v]
}

// addClauses teaches the accumulated circuit to the solver.
func (lm *litMap) addClauses(g inter.S) {
	lm.c.ToCnf(g)
}

// assignment reads the model back as 0/1 values per program variable.
func (lm *litMap) assignment(g inter.S) map[mp.Variable]float64 {
	values := make(map[mp.Variable]float64, len(lm.order))
	for _, v := range lm.order {
		if g.Value(lm.lits[v]) {
			values[v] = 1
		} else {
			values[v] = 0
		}
	}
	return values
}
