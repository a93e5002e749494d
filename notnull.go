package tableguard

import "maps"

// NotNull returns a validator that checks each configured column against its
// declared null policy: AllNotNull accepts only columns without nulls,
// AnyNotNull accepts columns with at least one non-null cell. All violating
// columns are collected into a single UnexpectedNullError.
func NotNull(policies map[string]NullPolicy, opts ...Option) Validator {
	declared := maps.Clone(policies)
	columns := sortedKeys(declared)
	detail := func(t Table) error {
		rows := t.NumRows()
		var violations []NullViolation
		for _, name := range columns {
			col, _ := t.Column(name)
			nulls := 0
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					nulls++
				}
			}
			satisfied := false
			switch declared[name] {
			case AllNotNull:
				satisfied = nulls == 0
			case AnyNotNull:
				satisfied = nulls < rows
			}
			if !satisfied {
				violations = append(violations, NullViolation{
					Column:    name,
					NullCount: nulls,
					Rows:      rows,
					Policy:    declared[name],
				})
			}
		}
		if len(violations) > 0 {
			return &UnexpectedNullError{Violations: violations}
		}
		return nil
	}
	return newColumnValidator(columns, detail, opts)
}
