package tableguard

import (
	"maps"
	"sort"
)

// HasDtype returns a validator that requires every configured column to carry
// the expected type tag. All mismatches are collected into a single
// WrongDtypeError so the caller sees the whole picture at once.
func HasDtype(dtypes map[string]Kind, opts ...Option) Validator {
	expected := maps.Clone(dtypes)
	columns := sortedKeys(expected)
	detail := func(t Table) error {
		var mismatches []DtypeMismatch
		for _, name := range columns {
			col, _ := t.Column(name)
			if col.Kind() != expected[name] {
				mismatches = append(mismatches, DtypeMismatch{
					Column:   name,
					Actual:   col.Kind(),
					Expected: expected[name],
				})
			}
		}
		if len(mismatches) > 0 {
			return &WrongDtypeError{Mismatches: mismatches}
		}
		return nil
	}
	return newColumnValidator(columns, detail, opts)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
