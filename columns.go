package tableguard

import (
	"fmt"
	"sort"
)

// detailCheck is the extension point of the column-contract template. It runs
// only after the nil, presence, and emptiness checks have passed on a
// non-empty table, and only over the validator's configured columns.
type detailCheck func(t Table) error

// columnValidator is the shared column contract: every column-based validator
// is this one concrete type with a different detail check injected. The check
// order is fixed: nil, column concept, required columns, emptiness, detail.
type columnValidator struct {
	columns    []string
	allowNone  bool
	allowEmpty bool
	detail     detailCheck
}

// HasColumns returns a validator that requires the value to be a non-empty
// table containing all the given columns. It is the bare column contract
// without any detail check.
func HasColumns(columns []string, opts ...Option) Validator {
	return newColumnValidator(columns, nil, opts)
}

func newColumnValidator(columns []string, detail detailCheck, opts []Option) columnValidator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	sort.Strings(cols)
	return columnValidator{
		columns:    cols,
		allowNone:  o.allowNone,
		allowEmpty: o.allowEmpty,
		detail:     detail,
	}
}

func (v columnValidator) Validate(value any) (any, error) {
	if isNil(value) {
		if v.allowNone {
			return nil, nil
		}
		return nil, &EmptyValueError{Reason: "value is nil"}
	}

	// A value without the column concept fails as a missing-columns
	// condition, listing every required column.
	t, ok := value.(Table)
	if !ok {
		return nil, &MissingColumnError{
			Columns: v.columns,
			Reason:  fmt.Sprintf("value of type %T has no columns", value),
		}
	}

	present := make(map[string]struct{}, len(t.Columns()))
	for _, name := range t.Columns() {
		present[name] = struct{}{}
	}
	var missing []string
	for _, name := range v.columns {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	if t.NumRows() == 0 {
		if !v.allowEmpty {
			return nil, &EmptyValueError{Reason: fmt.Sprintf("table of type %T has 0 rows", value)}
		}
		// Empty but tolerated: there is no data for the detail check.
		return value, nil
	}

	if v.detail != nil {
		if err := v.detail(t); err != nil {
			return nil, err
		}
	}
	return value, nil
}
