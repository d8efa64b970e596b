package task

import "errors"

var (
	// ErrIndexOutOfRange means the caller's position no longer refers to a
	// task in the current sequence; refresh the view and retry.
	ErrIndexOutOfRange = errors.New("task position out of range")

	// ErrAlreadyCompleted is informational: the task was completed before
	// the call and its state is unchanged.
	ErrAlreadyCompleted = errors.New("task already completed")
)

// ValidationError reports a rejected input field. Recoverable: the caller
// re-prompts or drops the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
