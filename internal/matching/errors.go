// Package matching implements the talent/offer compatibility scoring engine.
package matching

import "fmt"

// Error represents an error that occurs during match evaluation
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// invalidInput wraps a validation failure so callers can distinguish bad
// input from evaluation failures.
func invalidInput(subject string, cause error) error {
	return &Error{Message: "invalid " + subject, Cause: cause}
}
