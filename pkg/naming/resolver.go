// Package naming resolves display names for variables and constraints when
// a program is exported to an external format or engine. A single program
// can be exported to multiple formats, each with its own naming rules
// (character sets, length limits), without mutating the program itself.
package naming

import "github.com/optomata/gomp/pkg/mp"

// Format tags a target export format for per-format namer lookup.
type Format string

const (
	FormatLP  Format = "lp"
	FormatMPS Format = "mps"
)

// Resolver resolves names through an override chain: the per-format namer
// for the requested format when one is configured, else the global namer,
// else the program's own namer (itself defaulting to the structural
// description). Namers are statically typed functions; a namer cannot
// return a non-string, and an absent name is simply the empty string.
type Resolver struct {
	globalVar mp.VariableNamer
	globalCon mp.ConstraintNamer
	varByFmt  map[Format]mp.VariableNamer
	conByFmt  map[Format]mp.ConstraintNamer
}

// Option configures a Resolver at construction.
type Option func(*Resolver)

func WithGlobalVariableNamer(n mp.VariableNamer) Option {
	return func(r *Resolver) { r.globalVar = n }
}

func WithGlobalConstraintNamer(n mp.ConstraintNamer) Option {
	return func(r *Resolver) { r.globalCon = n }
}

func WithFormatVariableNamer(f Format, n mp.VariableNamer) Option {
	return func(r *Resolver) {
		if n != nil {
			r.varByFmt[f] = n
		}
	}
}

func WithFormatConstraintNamer(f Format, n mp.ConstraintNamer) Option {
	return func(r *Resolver) {
		if n != nil {
			r.conByFmt[f] = n
		}
	}
}

// NewResolver returns a resolver with the given chain configuration. With
// no options it resolves straight through to the program's namer.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		varByFmt: make(map[Format]mp.VariableNamer),
		conByFmt: make(map[Format]mp.ConstraintNamer),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// VariableName resolves the display name of v for the target format.
func (r *Resolver) VariableName(view mp.View, f Format, v mp.Variable) string {
	if n, ok := r.varByFmt[f]; ok {
		return n(v)
	}
	if r.globalVar != nil {
		return r.globalVar(v)
	}
	return view.VariableName(v)
}

// ConstraintName resolves the display name of c for the target format.
func (r *Resolver) ConstraintName(view mp.View, f Format, c mp.Constraint) string {
	if n, ok := r.conByFmt[f]; ok {
		return n(c)
	}
	if r.globalCon != nil {
		return r.globalCon(c)
	}
	return view.ConstraintName(c)
}
