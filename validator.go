package tableguard

import (
	"context"
	"reflect"
)

// Validator checks a single value against an immutable configuration fixed at
// construction time. Validate returns the value unchanged on success and a
// typed error from the taxonomy in errors.go on violation; it never transforms
// or mutates the value. Validators hold only read-only configuration and are
// safe for concurrent use.
type Validator interface {
	Validate(value any) (any, error)
}

// Chain composes validators in application order: each validator sees the
// previous one's output, and the first failure stops the chain.
type Chain []Validator

// Validate implements Validator.
func (c Chain) Validate(value any) (any, error) {
	var err error
	for _, v := range c {
		value, err = v.Validate(value)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Wrap0 returns a function of identical signature whose return value is
// passed through the validator before being handed to the caller.
func Wrap0[T any](v Validator, fn func() (T, error)) func() (T, error) {
	return func() (T, error) {
		out, err := fn()
		if err != nil {
			var zero T
			return zero, err
		}
		return validateAs[T](v, out)
	}
}

// Wrap1 is Wrap0 for single-argument functions.
func Wrap1[A, T any](v Validator, fn func(A) (T, error)) func(A) (T, error) {
	return func(a A) (T, error) {
		out, err := fn(a)
		if err != nil {
			var zero T
			return zero, err
		}
		return validateAs[T](v, out)
	}
}

// Wrap2 is Wrap0 for two-argument functions.
func Wrap2[A, B, T any](v Validator, fn func(A, B) (T, error)) func(A, B) (T, error) {
	return func(a A, b B) (T, error) {
		out, err := fn(a, b)
		if err != nil {
			var zero T
			return zero, err
		}
		return validateAs[T](v, out)
	}
}

// WrapContext is Wrap0 for context-aware producers, the common shape of
// query functions whose result sets end up validated.
func WrapContext[T any](v Validator, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		out, err := fn(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		return validateAs[T](v, out)
	}
}

func validateAs[T any](v Validator, value T) (T, error) {
	out, err := v.Validate(value)
	if err != nil {
		var zero T
		return zero, err
	}
	if out == nil {
		// Tolerated nil result (AllowNone) maps back to the zero value.
		var zero T
		return zero, nil
	}
	return out.(T), nil
}

// Option configures a validator at construction time. The resulting
// configuration is frozen: options are applied once inside the constructor
// and the validator never changes afterwards.
type Option func(*options)

type options struct {
	allowNone   bool
	allowEmpty  bool
	allowScalar bool
}

// AllowNone makes nil a valid value: validation short-circuits and returns
// nil unchanged instead of failing with ErrEmptyValue.
func AllowNone() Option {
	return func(o *options) { o.allowNone = true }
}

// AllowEmpty lets a zero-row table pass a column validator as long as all
// required columns are present; only the detail check is skipped.
func AllowEmpty() Option {
	return func(o *options) { o.allowEmpty = true }
}

// DisallowScalar makes NotEmpty reject values without a length concept.
func DisallowScalar() Option {
	return func(o *options) { o.allowScalar = false }
}

// isNil reports whether the value is the "no value at all" case: an untyped
// nil or a nil pointer. Nil slices and maps have length zero and are handled
// by the emptiness checks instead.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
