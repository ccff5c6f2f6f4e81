package pomodoro

import (
	"errors"
	"fmt"
)

// ErrInvalidState matches every InvalidStateError via errors.Is.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports an operation invoked from a state that does
// not permit it. It signals a caller bug, not a transient failure.
type InvalidStateError struct {
	Op    string
	State State
}

func (err *InvalidStateError) Error() string {
	return fmt.Sprintf("pomodoro: %s not allowed while %s", err.Op, err.State)
}

// Is makes errors.Is(err, ErrInvalidState) hold.
func (err *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

func invalidState(op string, state State) error {
	return &InvalidStateError{Op: op, State: state}
}
