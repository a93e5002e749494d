package tableguard

import "fmt"

// Table is the columnar container the validators operate on. Implementations
// are expected to be immutable snapshots: validators only enumerate column
// names, read cells, and inspect null masks, they never write.
//
// Any columnar source can participate by implementing this interface; the
// memtable package provides the reference in-memory implementation, and the
// sqltable, pgtable, and mongotable packages materialize external result sets
// into it.
type Table interface {
	// Columns returns the column names in table order.
	Columns() []string

	// Column returns the named column, or false if the table has no such column.
	Column(name string) (Column, bool)

	// NumRows returns the number of rows shared by all columns.
	NumRows() int
}

// Column is a named, typed, nullable sequence of cells within a Table.
type Column interface {
	Name() string
	Kind() Kind
	Len() int

	// IsNull reports whether the cell at index i holds no value.
	IsNull(i int) bool

	// Value returns the cell at index i. The result is nil for null cells.
	Value(i int) any
}

// Kind is the declared type tag of a column. Validators compare tags with
// plain equality; there is no coercion between kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindTime
	KindDecimal
	KindAny
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindBytes:   "bytes",
	KindTime:    "time",
	KindDecimal: "decimal",
	KindAny:     "any",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converts a textual type tag (as used in contract files) into a
// Kind. Unknown tags are configuration errors, not validation failures.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != KindInvalid && name == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown column kind %q", s)
}

// NullPolicy declares how many cells of a column must be non-null.
type NullPolicy uint8

const (
	// AnyNotNull requires at least one non-null cell in the column.
	AnyNotNull NullPolicy = iota + 1
	// AllNotNull requires every cell in the column to be non-null.
	AllNotNull
)

func (p NullPolicy) String() string {
	switch p {
	case AnyNotNull:
		return "any"
	case AllNotNull:
		return "all"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParseNullPolicy converts a textual policy tag ("any" or "all") into a
// NullPolicy.
func ParseNullPolicy(s string) (NullPolicy, error) {
	switch s {
	case "any":
		return AnyNotNull, nil
	case "all":
		return AllNotNull, nil
	default:
		return 0, fmt.Errorf("unknown null policy %q: must be \"any\" or \"all\"", s)
	}
}
