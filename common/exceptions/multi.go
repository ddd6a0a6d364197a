package exceptions

import "strings"

type multiError struct {
	errors []error
}

func (e *multiError) Error() string {
	messages := make([]string, 0, len(e.errors))
	for _, err := range e.errors {
		messages = append(messages, err.Error())
	}
	return "multi error: (" + strings.Join(messages, " | ") + ")"
}

func (e *multiError) Unwrap() []error {
	return e.errors
}

func Errors(errs ...error) error {
	var (
		filtered []error
		messages = make(map[string]bool)
	)
	for _, err := range expandAll(errs) {
		if err == nil {
			continue
		}
		message := err.Error()
		if messages[message] {
			continue
		}
		messages[message] = true
		filtered = append(filtered, err)
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}
	return &multiError{errors: filtered}
}

func expandAll(errs []error) []error {
	var expanded []error
	for _, err := range errs {
		if multiErr, isMulti := err.(*multiError); isMulti {
			expanded = append(expanded, expandAll(multiErr.errors)...)
		} else {
			expanded = append(expanded, err)
		}
	}
	return expanded
}
