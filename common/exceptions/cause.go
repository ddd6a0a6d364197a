package exceptions

import "fmt"

type extendedError struct {
	cause   error
	message string
}

func (e *extendedError) Error() string {
	return e.cause.Error() + ": " + e.message
}

func (e *extendedError) Unwrap() error {
	return e.cause
}

// Extend appends detail to a sentinel error while keeping errors.Is working on it.
func Extend(cause error, message ...any) error {
	if cause == nil {
		panic("extend on an nil error")
	}
	return &extendedError{cause, fmt.Sprint(message...)}
}
