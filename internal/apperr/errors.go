// Package apperr defines the error kinds surfaced to the worklog user.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrParse                  = errors.New("could not parse command")
	ErrUnknownCommand         = errors.New("unknown command")
	ErrNoStartMessage         = errors.New("a message is required to start a task")
	ErrInvalidTime            = errors.New("invalid time")
	ErrAmbiguousLocalMidnight = errors.New("local midnight is ambiguous or does not exist")
	ErrParseInterval          = errors.New("could not parse interval")
	ErrParseDatetime          = errors.New("could not parse datetime")
)

// InputError is a user-input error. Kind is one of the sentinel errors above,
// Fragment is the offending piece of the command line.
type InputError struct {
	Kind     error
	Fragment string
	Cause    error
}

func (e *InputError) Error() string {
	msg := e.Kind.Error()
	if e.Fragment != "" {
		msg += fmt.Sprintf(" %q", e.Fragment)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (e *InputError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func ParseInterval(fragment string, cause error) error {
	return &InputError{Kind: ErrParseInterval, Fragment: fragment, Cause: cause}
}

func ParseDatetime(fragment string, cause error) error {
	return &InputError{Kind: ErrParseDatetime, Fragment: fragment, Cause: cause}
}

func InvalidTime(fragment string, cause error) error {
	return &InputError{Kind: ErrInvalidTime, Fragment: fragment, Cause: cause}
}

func AmbiguousLocalMidnight(date string) error {
	return &InputError{Kind: ErrAmbiguousLocalMidnight, Fragment: date}
}

func UnknownCommand(name string) error {
	return &InputError{Kind: ErrUnknownCommand, Fragment: name}
}

func NoStartMessage() error {
	return &InputError{Kind: ErrNoStartMessage}
}

// Parse reports a line that matched no grammar alternative structurally.
func Parse(fragment string, cause error) error {
	return &InputError{Kind: ErrParse, Fragment: fragment, Cause: cause}
}

// IsInput reports whether err is a user-input error rather than an
// operational one.
func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
