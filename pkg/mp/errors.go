package mp

import "fmt"

// ArgumentError reports a malformed value-model construction: non-finite
// numbers, empty required sums, incompatible integer bounds, or a
// conflicting re-registration of a variable description. It is always
// returned at construction time, never deferred.
type ArgumentError struct {
	Op     string
	Detail string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func argErrf(op string, format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// UnknownVariableError reports a constraint or objective referencing a
// variable that is not registered with the target program. It only arises
// in the Strict forwarding wrapper; the builder itself auto-registers.
type UnknownVariableError struct {
	Op          string
	Description string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("%s: variable %q is not registered with the program", e.Op, e.Description)
}
