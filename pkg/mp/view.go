package mp

// View is the read-only surface of a program: everything an engine adapter
// or file-format writer needs, and nothing that mutates. *MP implements
// View; the wrapper constructors below layer capability restrictions and
// transformations over a shared program.
type View interface {
	Name() string
	Variables() []Variable
	Constraints() []Constraint
	Objective() Objective
	Dimension() Dimension
	// KindOf reports the kind the view exports for v; transformed views may
	// report a kind other than the derived one.
	KindOf(v Variable) Kind
	VariableName(v Variable) string
	ConstraintName(c Constraint) string
}

var _ View = (*MP)(nil)

type readOnly struct {
	v View
}

// ReadOnly wraps a program so callers cannot reach the mutators by type
// assertion. The wrapper holds a reference, not a copy: later mutations of
// the underlying program remain visible.
func ReadOnly(v View) View {
	return readOnly{v: v}
}

func (r readOnly) Name() string                      { return r.v.Name() }
func (r readOnly) Variables() []Variable             { return r.v.Variables() }
func (r readOnly) Constraints() []Constraint         { return r.v.Constraints() }
func (r readOnly) Objective() Objective              { return r.v.Objective() }
func (r readOnly) Dimension() Dimension              { return r.v.Dimension() }
func (r readOnly) KindOf(v Variable) Kind            { return r.v.KindOf(v) }
func (r readOnly) VariableName(v Variable) string    { return r.v.VariableName(v) }
func (r readOnly) ConstraintName(c Constraint) string { return r.v.ConstraintName(c) }

// Snapshot returns an immutable view backed by a deep, defensive copy of
// the program. Later mutations of m are invisible through the snapshot, so
// an engine adapter handed one cannot observe or corrupt the caller's
// program.
func Snapshot(m *MP) View {
	return readOnly{v: m.Clone()}
}

type boolsAsInts struct {
	View
}

// BoolsAsInts wraps a view so boolean variables are exported with the
// plain integer kind. Engines without a native binary variable type consume
// this transformed view; bounds stay [0, 1], only the reported kind
// changes.
func BoolsAsInts(v View) View {
	return boolsAsInts{View: v}
}

func (b boolsAsInts) KindOf(v Variable) Kind {
	if k := b.View.KindOf(v); k != BoolKind {
		return k
	}
	return IntKind
}

// Strict is a forwarding wrapper whose mutators reject constraints and
// objectives referencing unregistered variables instead of auto-registering
// them. Variables must be added through AddVariable first.
type Strict struct {
	m *MP
}

// NewStrict wraps m. The wrapper holds a reference: mutations through
// either handle observe each other.
func NewStrict(m *MP) *Strict {
	return &Strict{m: m}
}

func (s *Strict) AddVariable(v Variable) (bool, error) {
	return s.m.AddVariable(v)
}

// Add inserts the constraint, failing with an UnknownVariableError when the
// left-hand side references a variable the program does not hold.
func (s *Strict) Add(c Constraint) (bool, error) {
	for _, v := range c.LHS().Variables() {
		if !s.m.ContainsVariable(v) {
			return false, &UnknownVariableError{Op: "strict add constraint", Description: v.Description()}
		}
	}
	return s.m.Add(c)
}

// SetObjective replaces the objective, failing with an
// UnknownVariableError when the function references a variable the program
// does not hold.
func (s *Strict) SetObjective(fn SumTerms, sense Sense) (bool, error) {
	for _, v := range fn.Variables() {
		if !s.m.ContainsVariable(v) {
			return false, &UnknownVariableError{Op: "strict set objective", Description: v.Description()}
		}
	}
	return s.m.SetObjective(fn, sense)
}

// Program returns the wrapped program's read-only surface.
func (s *Strict) Program() View {
	return ReadOnly(s.m)
}
