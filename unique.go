package tableguard

import (
	"fmt"
	"math"
	"reflect"
)

// Unique returns a validator that requires every cell value within each of
// the given columns to occur exactly once. Null cells count as values, so two
// nulls in one column are duplicates. Unlike the structural checks, this one
// fails fast: the first duplicate found ends the scan.
func Unique(columns []string, opts ...Option) Validator {
	cols := make([]string, len(columns))
	copy(cols, columns)
	detail := func(t Table) error {
		for _, name := range cols {
			col, _ := t.Column(name)
			seen := make(map[any]struct{}, col.Len())
			for i := 0; i < col.Len(); i++ {
				key := cellKey(col.Value(i))
				if _, dup := seen[key]; dup {
					return &NotUniqueError{Column: name, Value: col.Value(i)}
				}
				seen[key] = struct{}{}
			}
		}
		return nil
	}
	return newColumnValidator(cols, detail, opts)
}

// cellKey maps a cell value onto a comparable map key. Byte slices fold to
// string (columns hold cells of one kind, so this cannot collide with genuine
// string cells), NaN folds to a single sentinel so repeated NaN counts as a
// duplicate, and cells of any other non-comparable type fold to their
// formatted representation instead of panicking on map insert or comparison.
func cellKey(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(t)
	case float64:
		if math.IsNaN(t) {
			return foldedCell{repr: "NaN"}
		}
		return t
	case float32:
		if math.IsNaN(float64(t)) {
			return foldedCell{repr: "NaN"}
		}
		return t
	}
	if !reflect.TypeOf(v).Comparable() {
		// fmt prints map keys in sorted order, so equal values fold equal.
		return foldedCell{repr: fmt.Sprintf("%#v", v)}
	}
	return v
}

// foldedCell keeps folded representations distinct from genuine string cells.
type foldedCell struct {
	repr string
}
