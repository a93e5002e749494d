// Package pgtable materializes pgx result sets into memtable tables so query
// results from PostgreSQL can be checked with tableguard validators. Column
// kinds are derived from the result's type OIDs; NULL becomes a null cell.
package pgtable

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matthiashuschle/tableguard"
	"github.com/matthiashuschle/tableguard/memtable"
)

// ErrReadRows wraps pgx failures while draining a result set.
var ErrReadRows = errors.New("failed to read rows")

// Read drains the result set into an immutable table. The caller keeps
// ownership of rows; Read consumes all remaining rows but does not close.
func Read(rows pgx.Rows) (*memtable.Table, error) {
	fields := rows.FieldDescriptions()
	if len(fields) == 0 {
		return nil, errors.Join(ErrReadRows, memtable.ErrNoColumns)
	}

	cells := make([][]any, len(fields))
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, errors.Join(ErrReadRows, err)
		}
		for i, v := range values {
			cells[i] = append(cells[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrReadRows, err)
	}

	cols := make([]memtable.Column, len(fields))
	for i, fd := range fields {
		cols[i] = memtable.NewColumn(fd.Name, kindOf(fd.DataTypeOID), cells[i])
	}
	return memtable.New(cols...)
}

// kindOf maps a PostgreSQL type OID onto a table kind. Types outside the
// common scalar set tag as KindAny rather than guessing.
func kindOf(oid uint32) tableguard.Kind {
	switch oid {
	case pgtype.BoolOID:
		return tableguard.KindBool
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID:
		return tableguard.KindInt
	case pgtype.Float4OID, pgtype.Float8OID:
		return tableguard.KindFloat
	case pgtype.TextOID, pgtype.VarcharOID, pgtype.BPCharOID, pgtype.NameOID:
		return tableguard.KindString
	case pgtype.ByteaOID:
		return tableguard.KindBytes
	case pgtype.DateOID, pgtype.TimestampOID, pgtype.TimestamptzOID:
		return tableguard.KindTime
	case pgtype.NumericOID:
		return tableguard.KindDecimal
	default:
		return tableguard.KindAny
	}
}
