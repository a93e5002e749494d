package tableguard

import (
	"errors"
	"fmt"
	"strings"
)

// Category sentinels for the validation error taxonomy. Every structured
// error below unwraps to its category sentinel and to ErrValidation, so
// callers can catch broadly with errors.Is(err, ErrValidation) or narrowly
// with a category sentinel, and extract details with errors.As.
var (
	// ErrValidation is the root of the taxonomy; every validation failure matches it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyValue indicates a nil, zero-length, or unexpectedly scalar value.
	ErrEmptyValue = errors.New("empty value")

	// ErrMissingColumn indicates required columns absent from the value,
	// including values that have no column concept at all.
	ErrMissingColumn = errors.New("missing column")

	// ErrWrongDtype indicates columns whose declared type tag does not match
	// the expected one.
	ErrWrongDtype = errors.New("wrong dtype")

	// ErrUnexpectedNull indicates columns violating their declared null policy.
	ErrUnexpectedNull = errors.New("unexpected null")

	// ErrNotUnique indicates a column containing duplicate values.
	ErrNotUnique = errors.New("column not unique")

	// ErrNotSingleValue indicates a column containing more than one distinct value.
	ErrNotSingleValue = errors.New("column not single-valued")
)

// EmptyValueError reports a nil, zero-length, or disallowed scalar value.
type EmptyValueError struct {
	Reason string
}

func (e *EmptyValueError) Error() string {
	return "empty value: " + e.Reason
}

func (e *EmptyValueError) Unwrap() []error {
	return []error{ErrValidation, ErrEmptyValue}
}

// MissingColumnError reports every required column absent from the value. A
// value without any column concept fails with all required columns listed.
type MissingColumnError struct {
	Columns []string
	Reason  string
}

func (e *MissingColumnError) Error() string {
	msg := "missing columns: " + strings.Join(e.Columns, ", ")
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *MissingColumnError) Unwrap() []error {
	return []error{ErrValidation, ErrMissingColumn}
}

// DtypeMismatch describes one column whose type tag differs from the expected one.
type DtypeMismatch struct {
	Column   string
	Actual   Kind
	Expected Kind
}

func (m DtypeMismatch) String() string {
	return fmt.Sprintf("%s: %s (expected %s)", m.Column, m.Actual, m.Expected)
}

// WrongDtypeError aggregates all type-tag mismatches found in one pass.
type WrongDtypeError struct {
	Mismatches []DtypeMismatch
}

func (e *WrongDtypeError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return "columns with wrong dtypes: " + strings.Join(parts, ", ")
}

func (e *WrongDtypeError) Unwrap() []error {
	return []error{ErrValidation, ErrWrongDtype}
}

// NullViolation describes one column that failed its declared null policy.
type NullViolation struct {
	Column    string
	NullCount int
	Rows      int
	Policy    NullPolicy
}

func (v NullViolation) String() string {
	return fmt.Sprintf("%s: %d of %d null (not null expected: %s)", v.Column, v.NullCount, v.Rows, v.Policy)
}

// UnexpectedNullError aggregates all null-policy violations found in one pass.
type UnexpectedNullError struct {
	Violations []NullViolation
}

func (e *UnexpectedNullError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "unexpected null values in columns: " + strings.Join(parts, ", ")
}

func (e *UnexpectedNullError) Unwrap() []error {
	return []error{ErrValidation, ErrUnexpectedNull}
}

// NotUniqueError reports the first duplicate value found in a column.
type NotUniqueError struct {
	Column string
	Value  any
}

func (e *NotUniqueError) Error() string {
	return fmt.Sprintf("column %s is not unique: first duplicate value %v", e.Column, e.Value)
}

func (e *NotUniqueError) Unwrap() []error {
	return []error{ErrValidation, ErrNotUnique}
}

// NotSingleValueError reports the first two distinct values found in a column
// expected to hold a single value.
type NotSingleValueError struct {
	Column string
	Values [2]any
}

func (e *NotSingleValueError) Error() string {
	return fmt.Sprintf("column %s has multiple values: first two values %v, %v", e.Column, e.Values[0], e.Values[1])
}

func (e *NotSingleValueError) Unwrap() []error {
	return []error{ErrValidation, ErrNotSingleValue}
}

// Category returns the short name of the failure category for a validation
// error ("empty_value", "missing_column", "wrong_dtype", "unexpected_null",
// "not_unique", "not_single_value"), or the empty string for any other error.
// Intended for log attributes and metric labels.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyValue):
		return "empty_value"
	case errors.Is(err, ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, ErrWrongDtype):
		return "wrong_dtype"
	case errors.Is(err, ErrUnexpectedNull):
		return "unexpected_null"
	case errors.Is(err, ErrNotUnique):
		return "not_unique"
	case errors.Is(err, ErrNotSingleValue):
		return "not_single_value"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return ""
	}
}
