package mp

import "fmt"

// VariableNamer maps a variable to a display name.
type VariableNamer func(Variable) string

// ConstraintNamer maps a constraint to a display name.
type ConstraintNamer func(Constraint) string

// MP is a mutable mathematical program: a deduplicated, insertion-ordered
// set of variables, an insertion-ordered set of constraints, and one
// objective. Every variable referenced by a stored constraint or by the
// objective is a member of the variable set; Add and SetObjective maintain
// the invariant by registering referenced variables as a side effect, so it
// holds by construction.
//
// MP is not safe for concurrent mutation; a single owning goroutine is
// assumed between solver invocations.
type MP struct {
	name     string
	vars     []Variable
	varIndex map[string]int
	cons     []Constraint
	conIndex map[string][]int
	obj      Objective
	varNamer VariableNamer
	conNamer ConstraintNamer

	boolCount int
	intCount  int
	realCount int
}

// New returns an empty program with no objective and structural namers.
func New() *MP {
	m := &MP{}
	m.reset()
	return m
}

func (m *MP) reset() {
	m.name = ""
	m.vars = nil
	m.varIndex = make(map[string]int)
	m.cons = nil
	m.conIndex = make(map[string][]int)
	m.obj = Zero()
	m.varNamer = nil
	m.conNamer = nil
	m.boolCount = 0
	m.intCount = 0
	m.realCount = 0
}

func (m *MP) Name() string {
	return m.name
}

// SetName replaces the program name and reports whether it changed.
func (m *MP) SetName(name string) bool {
	if m.name == name {
		return false
	}
	m.name = name
	return true
}

// AddVariable registers v and reports whether the variable set changed.
// Re-adding an equal variable is a no-op. Adding a different variable under
// an already-registered description is rejected with an ArgumentError: the
// lineage of this design silently ignored or overwrote such
// re-definitions, and rejection is the documented policy here.
func (m *MP) AddVariable(v Variable) (bool, error) {
	if v.IsZero() {
		return false, argErrf("add variable", "variable is the zero value")
	}
	if i, ok := m.varIndex[v.desc]; ok {
		if m.vars[i] == v {
			return false, nil
		}
		return false, argErrf("add variable",
			"conflicting re-definition of %q: have %s %s, got %s %s",
			v.desc, m.vars[i].Kind(), m.vars[i].bounds, v.Kind(), v.bounds)
	}
	m.varIndex[v.desc] = len(m.vars)
	m.vars = append(m.vars, v)
	switch v.Kind() {
	case BoolKind:
		m.boolCount++
	case IntKind:
		m.intCount++
	default:
		m.realCount++
	}
	return true, nil
}

// Variables returns the variable set in insertion order.
func (m *MP) Variables() []Variable {
	if len(m.vars) == 0 {
		return nil
	}
	out := make([]Variable, len(m.vars))
	copy(out, m.vars)
	return out
}

// Variable looks a variable up by description.
func (m *MP) Variable(description string) (Variable, bool) {
	if i, ok := m.varIndex[description]; ok {
		return m.vars[i], true
	}
	return Variable{}, false
}

// ContainsVariable reports whether an equal variable is registered.
func (m *MP) ContainsVariable(v Variable) bool {
	i, ok := m.varIndex[v.desc]
	return ok && m.vars[i] == v
}

// Add registers every variable referenced by the constraint, then inserts
// the constraint. It reports whether the constraint set changed. A
// constraint equal to a stored one is not inserted again.
func (m *MP) Add(c Constraint) (bool, error) {
	if c.IsZero() {
		return false, argErrf("add constraint", "constraint is the zero value")
	}
	registered := 0
	for _, v := range c.lhs.Variables() {
		changed, err := m.AddVariable(v)
		if err != nil {
			return false, fmt.Errorf("add constraint %q: %w", c.desc, err)
		}
		if changed {
			registered++
		}
	}
	for _, i := range m.conIndex[c.desc] {
		if m.cons[i].Equal(c) {
			if registered > 0 {
				// A stored constraint cannot reference variables that were
				// unknown a moment ago.
				panic(fmt.Sprintf("mp: stored constraint %q required registering %d variables", c.desc, registered))
			}
			return false, nil
		}
	}
	m.conIndex[c.desc] = append(m.conIndex[c.desc], len(m.cons))
	m.cons = append(m.cons, c)
	return true, nil
}

// Constraints returns the constraint set in insertion order.
func (m *MP) Constraints() []Constraint {
	if len(m.cons) == 0 {
		return nil
	}
	out := make([]Constraint, len(m.cons))
	copy(out, m.cons)
	return out
}

// Constraint looks up the first constraint stored under the description.
func (m *MP) Constraint(description string) (Constraint, bool) {
	if is := m.conIndex[description]; len(is) > 0 {
		return m.cons[is[0]], true
	}
	return Constraint{}, false
}

func (m *MP) Objective() Objective {
	return m.obj
}

// SetObjective registers the function's variables, replaces the objective,
// and reports whether it differs from the previous one.
func (m *MP) SetObjective(fn SumTerms, sense Sense) (bool, error) {
	for _, v := range fn.Variables() {
		if _, err := m.AddVariable(v); err != nil {
			return false, fmt.Errorf("set objective: %w", err)
		}
	}
	next := NewObjective(fn, sense)
	if m.obj.Equal(next) {
		return false, nil
	}
	m.obj = next
	return true, nil
}

// SetVariableNamer replaces the variable namer; nil restores the structural
// default. Reports whether the setting changed; installing a non-nil namer
// always counts as a change since function values cannot be compared.
func (m *MP) SetVariableNamer(n VariableNamer) bool {
	if n == nil && m.varNamer == nil {
		return false
	}
	m.varNamer = n
	return true
}

// SetConstraintNamer replaces the constraint namer; nil restores the
// structural default. Change reporting follows SetVariableNamer.
func (m *MP) SetConstraintNamer(n ConstraintNamer) bool {
	if n == nil && m.conNamer == nil {
		return false
	}
	m.conNamer = n
	return true
}

// VariableName resolves the display name of v through the program's namer,
// defaulting to the structural description.
func (m *MP) VariableName(v Variable) string {
	if m.varNamer != nil {
		return m.varNamer(v)
	}
	return v.desc
}

// ConstraintName resolves the display name of c through the program's
// namer, defaulting to the structural rendering.
func (m *MP) ConstraintName(c Constraint) string {
	if m.conNamer != nil {
		return m.conNamer(c)
	}
	return c.String()
}

// KindOf reports the kind the program exports for v. The base program
// reports the derived kind; transformed views may override it.
func (m *MP) KindOf(v Variable) Kind {
	return v.Kind()
}

// Clear resets the program to the freshly constructed empty state,
// including name and namers.
func (m *MP) Clear() {
	m.reset()
}

// Dimension returns the per-kind census. It is O(1), maintained by the
// mutators rather than recomputed by scanning.
func (m *MP) Dimension() Dimension {
	return Dimension{
		booleans:    m.boolCount,
		integers:    m.intCount,
		reals:       m.realCount,
		constraints: len(m.cons),
	}
}

// Equal reports whether the two programs hold the same variable set,
// constraint set and objective. Names and namers do not participate.
// Variables compare as a description-keyed set, constraints as a multiset;
// insertion order does not matter.
func (m *MP) Equal(o *MP) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.vars) != len(o.vars) || len(m.cons) != len(o.cons) {
		return false
	}
	for _, v := range m.vars {
		j, ok := o.varIndex[v.desc]
		if !ok || o.vars[j] != v {
			return false
		}
	}
	counts := make(map[string]int, len(m.cons))
	for _, c := range m.cons {
		counts[c.String()]++
	}
	for _, c := range o.cons {
		counts[c.String()]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return m.obj.Equal(o.obj)
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (m *MP) Clone() *MP {
	out := New()
	out.name = m.name
	out.vars = append([]Variable(nil), m.vars...)
	for k, v := range m.varIndex {
		out.varIndex[k] = v
	}
	out.cons = append([]Constraint(nil), m.cons...)
	for k, v := range m.conIndex {
		out.conIndex[k] = append([]int(nil), v...)
	}
	out.obj = m.obj
	out.varNamer = m.varNamer
	out.conNamer = m.conNamer
	out.boolCount = m.boolCount
	out.intCount = m.intCount
	out.realCount = m.realCount
	return out
}
