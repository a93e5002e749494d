// Package sqltable materializes database/sql result sets into memtable tables
// so query results can be checked with tableguard validators. Column kinds
// are derived from the driver's declared column types; SQL NULL becomes a
// null cell.
package sqltable

import (
	"database/sql"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/matthiashuschle/tableguard"
	"github.com/matthiashuschle/tableguard/memtable"
)

// ErrReadRows wraps driver failures while draining a result set.
var ErrReadRows = errors.New("failed to read rows")

// Read drains the result set into an immutable table. The caller keeps
// ownership of rows and must still close them; Read consumes all remaining
// rows but does not call Close.
func Read(rows *sql.Rows) (*memtable.Table, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Join(ErrReadRows, err)
	}
	if len(types) == 0 {
		return nil, errors.Join(ErrReadRows, memtable.ErrNoColumns)
	}

	kinds := make([]tableguard.Kind, len(types))
	for i, ct := range types {
		kinds[i] = kindOf(ct)
	}

	cells := make([][]any, len(types))
	dest := make([]any, len(types))
	for rows.Next() {
		row := make([]any, len(types))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Join(ErrReadRows, err)
		}
		for i, v := range row {
			cells[i] = append(cells[i], normalize(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrReadRows, err)
	}

	cols := make([]memtable.Column, len(types))
	for i, ct := range types {
		cols[i] = memtable.NewColumn(ct.Name(), kinds[i], cells[i])
	}
	return memtable.New(cols...)
}

// Query runs the statement and materializes its full result set.
func Query(db *sql.DB, query string, args ...any) (*memtable.Table, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, errors.Join(ErrReadRows, err)
	}
	defer rows.Close()
	return Read(rows)
}

// kindOf maps a driver column type onto a table kind, preferring the declared
// database type name and falling back to the Go scan type.
func kindOf(ct *sql.ColumnType) tableguard.Kind {
	name := strings.ToUpper(ct.DatabaseTypeName())
	switch {
	case name == "BOOL" || name == "BOOLEAN":
		return tableguard.KindBool
	case strings.Contains(name, "INT"):
		return tableguard.KindInt
	case name == "REAL" || name == "FLOAT" || name == "DOUBLE" || strings.Contains(name, "FLOAT"):
		return tableguard.KindFloat
	case name == "NUMERIC" || name == "DECIMAL":
		return tableguard.KindDecimal
	case strings.Contains(name, "CHAR") || strings.Contains(name, "TEXT") || name == "CLOB":
		return tableguard.KindString
	case name == "BLOB" || name == "BYTEA" || strings.Contains(name, "BINARY"):
		return tableguard.KindBytes
	case strings.Contains(name, "DATE") || strings.Contains(name, "TIME"):
		return tableguard.KindTime
	}
	return scanKind(ct.ScanType())
}

func scanKind(t reflect.Type) tableguard.Kind {
	if t == nil {
		return tableguard.KindAny
	}
	if t == reflect.TypeOf(time.Time{}) {
		return tableguard.KindTime
	}
	switch t.Kind() {
	case reflect.Bool:
		return tableguard.KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return tableguard.KindInt
	case reflect.Float32, reflect.Float64:
		return tableguard.KindFloat
	case reflect.String:
		return tableguard.KindString
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return tableguard.KindBytes
		}
	}
	return tableguard.KindAny
}

// normalize keeps driver values as-is except for the raw byte buffers some
// drivers reuse between scans, which must be copied to stay valid.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		copied := make([]byte, len(b))
		copy(copied, b)
		return copied
	}
	return v
}
