package argparse

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSpec is matched by errors returned from Register when an
	// option declaration is malformed.
	ErrInvalidSpec = errors.New("invalid option spec")

	// ErrMissingValue is matched when a value-taking option is the last token.
	ErrMissingValue = errors.New("missing option value")

	// ErrTypeMismatch is matched when an option value cannot be coerced to the
	// option's declared type.
	ErrTypeMismatch = errors.New("option value type mismatch")

	// ErrUnsupportedOperation is returned by the write methods of View.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

type InvalidSpecError struct {
	Name    string
	Type    Type
	Default interface{}
	Reason  string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid spec for option %q: %s", e.Name, e.Reason)
}

func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s needs a value", e.Name)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// TypeMismatchError reports a value that could not be coerced to Expected.
// Err holds the underlying conversion error, if any.
type TypeMismatchError struct {
	Name     string
	Expected Type
	Value    string
	Err      error
}

func (e *TypeMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s value %q for option %s: %v", e.Expected, e.Value, e.Name, e.Err)
	}
	return fmt.Sprintf("invalid %s value %q for option %s", e.Expected, e.Value, e.Name)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}
