package stix

import (
	"errors"
	"fmt"
)

// Sentinel errors for common generation failures.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrUnrecognizedIOC indicates a raw IOC string matched no recognized
	// observable format. Callers should skip the item and continue.
	ErrUnrecognizedIOC = errors.New("unrecognized ioc format")

	// ErrInvalidTechniqueID indicates a malformed MITRE ATT&CK technique id.
	ErrInvalidTechniqueID = errors.New("invalid technique id")

	// ErrInvalidConfig indicates the provided configuration is invalid or
	// incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindClassification represents IOC classification misses.
	KindClassification = "classification"

	// KindFormat represents format violations such as malformed technique ids.
	KindFormat = "format"

	// KindConfiguration represents errors in configuration records.
	KindConfiguration = "configuration"

	// KindValidation represents errors found while validating objects.
	KindValidation = "validation"
)

// Error is a structured error type that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error implements the error interface and supports unwrapping, making it
// compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g. "Generator.GenerateIndicator").
	Op string

	// Kind categorizes the error (e.g. KindClassification).
	Kind string

	// Err is the underlying error.
	Err error

	// Value is the input that triggered the failure, when one exists.
	Value string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("stix: %s: %s", e.Op, e.Kind)
	}
	if e.Value != "" {
		return fmt.Sprintf("stix: %s (%s): %v: %q", e.Op, e.Kind, e.Err, e.Value)
	}
	return fmt.Sprintf("stix: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches either another *Error by Kind (and Op, when set on the target)
// or the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

func classificationError(op, value string) *Error {
	return &Error{Op: op, Kind: KindClassification, Err: ErrUnrecognizedIOC, Value: value}
}

func formatError(op, value string) *Error {
	return &Error{Op: op, Kind: KindFormat, Err: ErrInvalidTechniqueID, Value: value}
}
