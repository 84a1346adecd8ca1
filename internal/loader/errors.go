package loader

import (
	"errors"
	"fmt"
)

// ErrLoad matches every *LoadError via errors.Is.
var ErrLoad = errors.New("question set could not be loaded")

// LoadError reports an unreachable or malformed question resource.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load questions from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }
