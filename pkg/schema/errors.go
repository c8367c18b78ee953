package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey matches lookups of a key the schema does not declare.
	ErrUnknownKey = errors.New("unknown setting key")

	// ErrUnknownSection matches lookups of an undeclared section.
	ErrUnknownSection = errors.New("unknown section")

	// ErrOutOfRange matches integer candidates outside a declared range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidValue matches candidates that cannot be coerced to the declared type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidDefinition matches schema declarations that break an invariant.
	ErrInvalidDefinition = errors.New("invalid schema definition")

	// ErrDuplicateGroup is returned when registering a group twice.
	ErrDuplicateGroup = errors.New("group already registered")
)

// UnknownKeyError is returned for a key that is not declared in the group.
type UnknownKeyError struct {
	Group string
	Key   string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: unknown setting key %q", e.Group, e.Key)
}

func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// OutOfRangeError is returned for an integer candidate outside the setting's range.
type OutOfRangeError struct {
	Key   string
	Value int
	Range Range
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: value %d outside range %s", e.Key, e.Value, e.Range)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ValidationError is returned when a candidate cannot be coerced to the
// setting's kind, or names an option the enum does not declare.
type ValidationError struct {
	Key   string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid value %v: %v", e.Key, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}

func definitionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}
