// Package mongotable flattens BSON documents into memtable tables so query
// results from MongoDB can be checked with tableguard validators. Documents
// are schemaless, so the caller supplies an explicit field-to-kind projection;
// absent fields and explicit nulls become null cells.
package mongotable

import (
	"errors"
	"maps"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/matthiashuschle/tableguard"
	"github.com/matthiashuschle/tableguard/memtable"
)

// ErrNoFields indicates an empty field projection.
var ErrNoFields = errors.New("field projection must not be empty")

// FromDocuments materializes the documents into a table with one column per
// projected field, in sorted field order. Document keys outside the
// projection are ignored.
func FromDocuments(docs []bson.M, fields map[string]tableguard.Kind) (*memtable.Table, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	projected := maps.Clone(fields)
	names := sortedKeys(projected)

	cols := make([]memtable.Column, len(names))
	for i, name := range names {
		cells := make([]any, len(docs))
		for j, doc := range docs {
			cells[j] = cellValue(doc[name], projected[name])
		}
		cols[i] = memtable.NewColumn(name, projected[name], cells)
	}
	return memtable.New(cols...)
}

// cellValue converts a raw BSON value into a cell, unfolding the few BSON
// wrapper types that map onto table kinds.
func cellValue(v any, kind tableguard.Kind) any {
	switch t := v.(type) {
	case nil:
		return nil
	case bson.Null:
		return nil
	case bson.DateTime:
		if kind == tableguard.KindTime {
			return t.Time()
		}
		return t
	case int32:
		if kind == tableguard.KindInt {
			return int64(t)
		}
		return t
	case bson.Binary:
		if kind == tableguard.KindBytes {
			return t.Data
		}
		return t
	default:
		return v
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
