package tableguard

import (
	"fmt"
	"reflect"
)

type notEmpty struct {
	allowNone   bool
	allowScalar bool
}

// NotEmpty returns a validator that rejects nil and zero-length values.
// Scalars (values without a length concept) pass by default; use
// DisallowScalar to reject them, and AllowNone to tolerate nil.
func NotEmpty(opts ...Option) Validator {
	o := options{allowScalar: true}
	for _, opt := range opts {
		opt(&o)
	}
	return notEmpty{allowNone: o.allowNone, allowScalar: o.allowScalar}
}

func (v notEmpty) Validate(value any) (any, error) {
	if isNil(value) {
		if v.allowNone {
			return nil, nil
		}
		return nil, &EmptyValueError{Reason: "value is nil"}
	}
	if n, ok := lengthOf(value); ok {
		if n == 0 {
			return nil, &EmptyValueError{Reason: fmt.Sprintf("value of type %T has length 0", value)}
		}
		return value, nil
	}
	if !v.allowScalar {
		return nil, &EmptyValueError{Reason: fmt.Sprintf("value of scalar type %T", value)}
	}
	return value, nil
}

// lengthOf resolves the value's length concept: row count for tables, Len()
// for anything that exposes one, reflect length for the built-in sized kinds.
// The second result is false for scalars.
func lengthOf(value any) (int, bool) {
	switch v := value.(type) {
	case Table:
		return v.NumRows(), true
	case interface{ Len() int }:
		return v.Len(), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}
