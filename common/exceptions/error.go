package exceptions

import (
	"errors"
	"fmt"
)

type exception struct {
	message string
	cause   error
}

func (e *exception) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *exception) Unwrap() error {
	return e.cause
}

func New(message ...any) error {
	return errors.New(fmt.Sprint(message...))
}

func Cause(cause error, message ...any) error {
	if cause == nil {
		panic("cause on an nil error")
	}
	return &exception{fmt.Sprint(message...), cause}
}
