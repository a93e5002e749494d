package tableguard

// SingleValue returns a validator that requires each of the given columns to
// hold at most one distinct non-null value. On violation it fails fast with
// the column and the first two distinct values found.
func SingleValue(columns []string, opts ...Option) Validator {
	cols := make([]string, len(columns))
	copy(cols, columns)
	detail := func(t Table) error {
		for _, name := range cols {
			col, _ := t.Column(name)
			var (
				first    any
				firstKey any
				found    bool
			)
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					continue
				}
				key := cellKey(col.Value(i))
				if !found {
					first, firstKey, found = col.Value(i), key, true
					continue
				}
				if key != firstKey {
					return &NotSingleValueError{Column: name, Values: [2]any{first, col.Value(i)}}
				}
			}
		}
		return nil
	}
	return newColumnValidator(cols, detail, opts)
}
