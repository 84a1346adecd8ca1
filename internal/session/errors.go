package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition matches every *InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidSelection is returned when a submission names an option
	// the current question does not have.
	ErrInvalidSelection = errors.New("invalid selection")
)

// InvalidTransitionError reports an event the current phase does not
// accept. The session is left unchanged.
type InvalidTransitionError struct {
	Action string
	Phase  Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Action, e.Phase)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
