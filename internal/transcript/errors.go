package transcript

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a script with no lines.
	ErrEmpty = errors.New("transcript: empty script")

	// ErrNegativeDelay indicates a line scheduled before its predecessor.
	ErrNegativeDelay = errors.New("transcript: negative delay")

	// ErrUnknownScript indicates a built-in script name that does not exist.
	ErrUnknownScript = errors.New("transcript: unknown script")
)

// ScriptError wraps an error with the index of the offending line.
type ScriptError struct {
	Index   int
	Wrapped error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Index, e.Wrapped)
}

func (e *ScriptError) Unwrap() error {
	return e.Wrapped
}
