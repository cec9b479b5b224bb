package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBroker is returned when a broker is requested by a name that is not registered
	ErrUnknownBroker = errors.New("unknown broker")

	// ErrUnsupportedFile is returned when no registered broker format accepts a file
	ErrUnsupportedFile = errors.New("no broker format recognizes file")
)

// FormatRecognitionError reports that a broker format could not be chosen for a file
type FormatRecognitionError struct {
	Broker string // requested broker name, empty when auto-detecting
	Path   string
	Err    error
}

func (e *FormatRecognitionError) Error() string {
	if e.Broker != "" {
		return fmt.Sprintf("selecting broker %q for %s: %v", e.Broker, e.Path, e.Err)
	}
	return fmt.Sprintf("detecting broker for %s: %v", e.Path, e.Err)
}

func (e *FormatRecognitionError) Unwrap() error { return e.Err }

// FieldParseError reports a cell that could not be parsed. It aborts the whole file.
type FieldParseError struct {
	Path  string
	Line  int
	Field string
	Value string // raw cell content
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("%s:%d: parsing %s %q: %v", e.Path, e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }
