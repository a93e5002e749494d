package memtable

import "errors"

// Predefined errors for the memtable package.
var (
	// ErrNoColumns indicates an attempt to build a table without columns.
	ErrNoColumns = errors.New("table requires at least one column")

	// ErrDuplicateColumn indicates two columns sharing one name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrLengthMismatch indicates columns of differing lengths.
	ErrLengthMismatch = errors.New("column length mismatch")
)
