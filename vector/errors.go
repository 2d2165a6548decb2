package vector

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vector/coerce"
)

// ErrValue classifies ValueError
var ErrValue = errors.New("invalid value")

// OperandError reports an unsupported right operand; it is a coerce.ErrType
type OperandError struct {
	Op    Op
	Left  string
	Right string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("unsupported operand type(s) for %s: '%s' and '%s'", e.Op, e.Left, e.Right)
}

func (e *OperandError) Is(target error) bool { return target == coerce.ErrType }

// ValueError reports an argument of the right shape but wrong meaning
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return e.Msg }

func (e *ValueError) Is(target error) bool { return target == ErrValue }
