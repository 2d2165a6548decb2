package coerce

import (
	"errors"
	"fmt"
)

var (
	// ErrArity classifies element-count mismatches against the required 3
	ErrArity = errors.New("arity mismatch")
	// ErrType classifies inputs or elements of an unsupported type
	ErrType = errors.New("unsupported type")
)

// ArityError reports a Sequence or Iterable that did not yield exactly 3 elements
// More is set when an Iterable produced a 4th value; Got is then meaningless
type ArityError struct {
	Prefix string
	Got    int
	More   bool
}

func (e *ArityError) Error() string {
	if e.More {
		return fmt.Sprintf("%s must contain 3 elements, got more", e.Prefix)
	}
	return fmt.Sprintf("%s must contain 3 elements, got %d", e.Prefix, e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// TypeError reports a value of the wrong type, with the final message text
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

func (e *TypeError) Is(target error) bool { return target == ErrType }

// TypeErrorf formats a TypeError
func TypeErrorf(format string, args ...any) *TypeError {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

func elementError(prefix string, v any, index int) error {
	return TypeErrorf("%s must contain numeric values, got %s at %d", prefix, TypeName(v), index)
}

func shapeError(prefix string, v any) error {
	return TypeErrorf("%s must be a Sequence or Iterable, got %s", prefix, TypeName(v))
}
