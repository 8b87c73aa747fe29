package params

import (
	"fmt"
	"math"
	"strings"

	"github.com/optomata/gomp/pkg/mp"
	"github.com/optomata/gomp/pkg/naming"
)

// DoubleKey identifies a double-valued parameter. Every key carries a
// documented default used when the parameter is unset, so reads never fail.
type DoubleKey int

const (
	// MaxWallSeconds limits the wall-clock duration of a solve. Default:
	// +Inf (no limit). Mutually exclusive with MaxCPUSeconds.
	MaxWallSeconds DoubleKey = iota
	// MaxCPUSeconds limits the CPU duration of a solve. Default: +Inf (no
	// limit). Mutually exclusive with MaxWallSeconds.
	MaxCPUSeconds
	// MaxTreeSizeMB limits the engine's search-tree size. Default: +Inf.
	MaxTreeSizeMB
	// MaxMemoryMB limits the engine's working memory. Default: +Inf.
	MaxMemoryMB
)

func (k DoubleKey) String() string {
	switch k {
	case MaxWallSeconds:
		return "maxWallSeconds"
	case MaxCPUSeconds:
		return "maxCpuSeconds"
	case MaxTreeSizeMB:
		return "maxTreeSizeMb"
	case MaxMemoryMB:
		return "maxMemoryMb"
	}
	return fmt.Sprintf("doubleKey(%d)", int(k))
}

var doubleKeys = []DoubleKey{MaxWallSeconds, MaxCPUSeconds, MaxTreeSizeMB, MaxMemoryMB}

// IntKey identifies an integer-valued parameter.
type IntKey int

const (
	// MaxThreads caps the engine's parallelism. Default: 1.
	MaxThreads IntKey = iota
	// Deterministic selects deterministic (1) over opportunistic (0)
	// parallel mode. Default: 0.
	Deterministic
)

func (k IntKey) String() string {
	switch k {
	case MaxThreads:
		return "maxThreads"
	case Deterministic:
		return "deterministic"
	}
	return fmt.Sprintf("intKey(%d)", int(k))
}

var intKeys = []IntKey{MaxThreads, Deterministic}

// StringKey identifies a string-valued parameter.
type StringKey int

const (
	// WorkDir is the engine's working directory. Default: "" (engine
	// chooses).
	WorkDir StringKey = iota
)

func (k StringKey) String() string {
	switch k {
	case WorkDir:
		return "workDir"
	}
	return fmt.Sprintf("stringKey(%d)", int(k))
}

var stringKeys = []StringKey{WorkDir}

func doubleDefault(k DoubleKey) float64 {
	switch k {
	case MaxWallSeconds, MaxCPUSeconds, MaxTreeSizeMB, MaxMemoryMB:
		return math.Inf(1)
	}
	return math.Inf(1)
}

func intDefault(k IntKey) int {
	switch k {
	case MaxThreads:
		return 1
	case Deterministic:
		return 0
	}
	return 0
}

func stringDefault(k StringKey) string {
	return ""
}

// ConflictError reports mutually exclusive explicit parameter settings.
type ConflictError struct {
	Settings []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting parameter settings: %s", strings.Join(e.Settings, ", "))
}

// UnsupportedError reports a requested capability that is unavailable in
// the current environment.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported on this platform: %s", e.Feature)
}

// ValueError reports an out-of-range or malformed parameter value.
type ValueError struct {
	Key    string
	Detail string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Key, e.Detail)
}

// Params is the typed parameter store handed to engine adapters. Unset keys
// read as their defaults. The object-valued category holds the global and
// per-format namer functions used by the naming resolution chain.
//
// Params is not safe for concurrent mutation; like MP, a single owning
// goroutine is assumed between solver invocations.
type Params struct {
	doubles map[DoubleKey]float64
	ints    map[IntKey]int
	strings map[StringKey]string

	globalVarNamer   mp.VariableNamer
	globalConNamer   mp.ConstraintNamer
	formatVarNamers  map[naming.Format]mp.VariableNamer
	formatConNamers  map[naming.Format]mp.ConstraintNamer

	cpuProbe func() bool
}

// Option configures a Params at construction.
type Option func(*Params)

// WithCPUTimeProbe overrides the platform probe deciding whether CPU time
// can be measured. Tests use it to exercise both platforms.
func WithCPUTimeProbe(probe func() bool) Option {
	return func(p *Params) {
		if probe != nil {
			p.cpuProbe = probe
		}
	}
}

// New returns a store with every parameter unset.
func New(opts ...Option) *Params {
	p := &Params{
		doubles:         make(map[DoubleKey]float64),
		ints:            make(map[IntKey]int),
		strings:         make(map[StringKey]string),
		formatVarNamers: make(map[naming.Format]mp.VariableNamer),
		formatConNamers: make(map[naming.Format]mp.ConstraintNamer),
		cpuProbe:        func() bool { return cpuTimeSupported },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetDouble returns the explicitly set value, or the key's default.
func (p *Params) GetDouble(k DoubleKey) float64 {
	if v, ok := p.doubles[k]; ok {
		return v
	}
	return doubleDefault(k)
}

// IsDoubleSet reports whether the key was explicitly set.
func (p *Params) IsDoubleSet(k DoubleKey) bool {
	_, ok := p.doubles[k]
	return ok
}

// SetDouble sets the key and reports whether the stored value changed. All
// double-valued parameters are limits and must be positive; +Inf is
// permitted and equivalent to no limit.
func (p *Params) SetDouble(k DoubleKey, v float64) (bool, error) {
	if math.IsNaN(v) {
		return false, &ValueError{Key: k.String(), Detail: "value is NaN"}
	}
	if v <= 0 {
		return false, &ValueError{Key: k.String(), Detail: fmt.Sprintf("limit %g is not positive", v)}
	}
	old, had := p.doubles[k]
	if had && old == v {
		return false, nil
	}
	p.doubles[k] = v
	return true, nil
}

// UnsetDouble clears the key back to its default and reports whether it was
// set.
func (p *Params) UnsetDouble(k DoubleKey) bool {
	if _, ok := p.doubles[k]; !ok {
		return false
	}
	delete(p.doubles, k)
	return true
}

// GetInt returns the explicitly set value, or the key's default.
func (p *Params) GetInt(k IntKey) int {
	if v, ok := p.ints[k]; ok {
		return v
	}
	return intDefault(k)
}

func (p *Params) IsIntSet(k IntKey) bool {
	_, ok := p.ints[k]
	return ok
}

// SetInt sets the key and reports whether the stored value changed.
// MaxThreads must be at least 1; Deterministic must be 0 or 1.
func (p *Params) SetInt(k IntKey, v int) (bool, error) {
	switch k {
	case MaxThreads:
		if v < 1 {
			return false, &ValueError{Key: k.String(), Detail: fmt.Sprintf("thread count %d is below 1", v)}
		}
	case Deterministic:
		if v != 0 && v != 1 {
			return false, &ValueError{Key: k.String(), Detail: fmt.Sprintf("flag value %d is not 0 or 1", v)}
		}
	}
	old, had := p.ints[k]
	if had && old == v {
		return false, nil
	}
	p.ints[k] = v
	return true, nil
}

func (p *Params) UnsetInt(k IntKey) bool {
	if _, ok := p.ints[k]; !ok {
		return false
	}
	delete(p.ints, k)
	return true
}

// GetString returns the explicitly set value, or the key's default.
func (p *Params) GetString(k StringKey) string {
	if v, ok := p.strings[k]; ok {
		return v
	}
	return stringDefault(k)
}

func (p *Params) IsStringSet(k StringKey) bool {
	_, ok := p.strings[k]
	return ok
}

func (p *Params) SetString(k StringKey, v string) bool {
	old, had := p.strings[k]
	if had && old == v {
		return false
	}
	p.strings[k] = v
	return true
}

func (p *Params) UnsetString(k StringKey) bool {
	if _, ok := p.strings[k]; !ok {
		return false
	}
	delete(p.strings, k)
	return true
}

// SetGlobalVariableNamer installs the namer applied to every format without
// a dedicated one; nil clears it. Installing a non-nil namer always reports
// a change, function values being incomparable.
func (p *Params) SetGlobalVariableNamer(n mp.VariableNamer) bool {
	if n == nil && p.globalVarNamer == nil {
		return false
	}
	p.globalVarNamer = n
	return true
}

func (p *Params) SetGlobalConstraintNamer(n mp.ConstraintNamer) bool {
	if n == nil && p.globalConNamer == nil {
		return false
	}
	p.globalConNamer = n
	return true
}

// SetFormatVariableNamer installs a namer for one target format; nil
// removes the entry.
func (p *Params) SetFormatVariableNamer(f naming.Format, n mp.VariableNamer) bool {
	if n == nil {
		if _, ok := p.formatVarNamers[f]; !ok {
			return false
		}
		delete(p.formatVarNamers, f)
		return true
	}
	p.formatVarNamers[f] = n
	return true
}

func (p *Params) SetFormatConstraintNamer(f naming.Format, n mp.ConstraintNamer) bool {
	if n == nil {
		if _, ok := p.formatConNamers[f]; !ok {
			return false
		}
		delete(p.formatConNamers, f)
		return true
	}
	p.formatConNamers[f] = n
	return true
}

// NamingResolver assembles the naming chain configured in this store.
func (p *Params) NamingResolver() *naming.Resolver {
	opts := []naming.Option{
		naming.WithGlobalVariableNamer(p.globalVarNamer),
		naming.WithGlobalConstraintNamer(p.globalConNamer),
	}
	for f, n := range p.formatVarNamers {
		opts = append(opts, naming.WithFormatVariableNamer(f, n))
	}
	for f, n := range p.formatConNamers {
		opts = append(opts, naming.WithFormatConstraintNamer(f, n))
	}
	return naming.NewResolver(opts...)
}

// SetParameters atomically replaces the full typed parameter set with the
// contents of other (remove-all then set-all), reporting whether anything
// changed. Solver adapters use it to snapshot and restore parameter state.
// The platform probe is environmental, not a parameter, and is kept.
func (p *Params) SetParameters(other *Params) bool {
	changed := !p.scalarsEqual(other) || !p.namersComparable(other)
	p.doubles = make(map[DoubleKey]float64, len(other.doubles))
	for k, v := range other.doubles {
		p.doubles[k] = v
	}
	p.ints = make(map[IntKey]int, len(other.ints))
	for k, v := range other.ints {
		p.ints[k] = v
	}
	p.strings = make(map[StringKey]string, len(other.strings))
	for k, v := range other.strings {
		p.strings[k] = v
	}
	p.globalVarNamer = other.globalVarNamer
	p.globalConNamer = other.globalConNamer
	p.formatVarNamers = make(map[naming.Format]mp.VariableNamer, len(other.formatVarNamers))
	for f, n := range other.formatVarNamers {
		p.formatVarNamers[f] = n
	}
	p.formatConNamers = make(map[naming.Format]mp.ConstraintNamer, len(other.formatConNamers))
	for f, n := range other.formatConNamers {
		p.formatConNamers[f] = n
	}
	return changed
}

func (p *Params) scalarsEqual(o *Params) bool {
	if len(p.doubles) != len(o.doubles) || len(p.ints) != len(o.ints) || len(p.strings) != len(o.strings) {
		return false
	}
	for k, v := range p.doubles {
		if ov, ok := o.doubles[k]; !ok || ov != v {
			return false
		}
	}
	for k, v := range p.ints {
		if ov, ok := o.ints[k]; !ok || ov != v {
			return false
		}
	}
	for k, v := range p.strings {
		if ov, ok := o.strings[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// namersComparable approximates namer equality by presence: function values
// cannot be compared, so a differing set of installed namers counts as a
// change and an identical set does not.
func (p *Params) namersComparable(o *Params) bool {
	if (p.globalVarNamer == nil) != (o.globalVarNamer == nil) {
		return false
	}
	if (p.globalConNamer == nil) != (o.globalConNamer == nil) {
		return false
	}
	if len(p.formatVarNamers) != len(o.formatVarNamers) || len(p.formatConNamers) != len(o.formatConNamers) {
		return false
	}
	for f := range p.formatVarNamers {
		if _, ok := o.formatVarNamers[f]; !ok {
			return false
		}
	}
	for f := range p.formatConNamers {
		if _, ok := o.formatConNamers[f]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (p *Params) Clone() *Params {
	out := New(WithCPUTimeProbe(p.cpuProbe))
	out.SetParameters(p)
	return out
}
