package flow

import (
	"fmt"
	"strings"
)

// ErrMissingFields indicates a step was committed without all of its
// required fields. The step does not advance.
type ErrMissingFields struct {
	Fields []string
}

func (e *ErrMissingFields) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ErrWrongStep indicates an operation was invoked on a step that does
// not accept it.
type ErrWrongStep struct {
	Got  Step
	Want Step
}

func (e *ErrWrongStep) Error() string {
	return fmt.Sprintf("operation requires step %q, session is at %q", e.Want, e.Got)
}

// ErrGenerationFailed indicates the question-generation collaborator
// failed. The vendor-link flow cannot proceed without questions.
type ErrGenerationFailed struct {
	Err error
}

func (e *ErrGenerationFailed) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *ErrGenerationFailed) Unwrap() error { return e.Err }

// ErrPersistFailed indicates the lead could not be saved locally. This
// is the one failure that halts the flow; the caller may retry.
type ErrPersistFailed struct {
	Err error
}

func (e *ErrPersistFailed) Error() string {
	return fmt.Sprintf("persist lead: %v", e.Err)
}

func (e *ErrPersistFailed) Unwrap() error { return e.Err }
