// Package memtable provides an immutable in-memory implementation of the
// tableguard Table and Column interfaces. It is what the sqltable, pgtable,
// and mongotable adapters materialize into, and the natural fixture for tests
// that exercise validators. Null cells are represented by nil.
package memtable

import (
	"fmt"
	"time"

	"github.com/matthiashuschle/tableguard"
)

// Column is a named, typed, nullable cell sequence. Construct it with
// NewColumn or one of the typed convenience constructors; the cell slice is
// copied so the column never observes later mutation.
type Column struct {
	name  string
	kind  tableguard.Kind
	cells []any
}

// NewColumn creates a column with the given name, type tag, and cells.
// A nil cell is a null.
func NewColumn(name string, kind tableguard.Kind, cells []any) Column {
	copied := make([]any, len(cells))
	copy(copied, cells)
	return Column{name: name, kind: kind, cells: copied}
}

// Bools creates a non-nullable bool column.
func Bools(name string, values ...bool) Column {
	return NewColumn(name, tableguard.KindBool, anyCells(values))
}

// Ints creates a non-nullable int column.
func Ints(name string, values ...int64) Column {
	return NewColumn(name, tableguard.KindInt, anyCells(values))
}

// Floats creates a non-nullable float column.
func Floats(name string, values ...float64) Column {
	return NewColumn(name, tableguard.KindFloat, anyCells(values))
}

// Strings creates a non-nullable string column.
func Strings(name string, values ...string) Column {
	return NewColumn(name, tableguard.KindString, anyCells(values))
}

// Times creates a non-nullable time column.
func Times(name string, values ...time.Time) Column {
	return NewColumn(name, tableguard.KindTime, anyCells(values))
}

func anyCells[T any](values []T) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func (c Column) Name() string { return c.name }

func (c Column) Kind() tableguard.Kind { return c.kind }

func (c Column) Len() int { return len(c.cells) }

func (c Column) IsNull(i int) bool { return c.cells[i] == nil }

func (c Column) Value(i int) any { return c.cells[i] }

// Table is an immutable set of equally long, uniquely named columns.
type Table struct {
	names []string
	cols  map[string]Column
	rows  int
}

// New builds a table from the given columns, preserving their order. It fails
// when no columns are given, a name repeats, or column lengths differ.
func New(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	t := &Table{
		names: make([]string, 0, len(cols)),
		cols:  make(map[string]Column, len(cols)),
		rows:  cols[0].Len(),
	}
	for _, col := range cols {
		if _, exists := t.cols[col.name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, col.name)
		}
		if col.Len() != t.rows {
			return nil, fmt.Errorf("%w: column %s has %d cells, expected %d",
				ErrLengthMismatch, col.name, col.Len(), t.rows)
		}
		t.names = append(t.names, col.name)
		t.cols[col.name] = col
	}
	return t, nil
}

// MustNew is New for fixtures and tests; it panics on invalid input.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(fmt.Sprintf("memtable: %v", err))
	}
	return t
}

// Columns implements tableguard.Table.
func (t *Table) Columns() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Column implements tableguard.Table.
func (t *Table) Column(name string) (tableguard.Column, bool) {
	col, ok := t.cols[name]
	return col, ok
}

// NumRows implements tableguard.Table.
func (t *Table) NumRows() int { return t.rows }
