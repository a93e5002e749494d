package tableguard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthiashuschle/tableguard"
	"github.com/matthiashuschle/tableguard/memtable"
)

func TestHasColumns(t *testing.T) {
	t.Run("fails for nil by default", func(t *testing.T) {
		_, err := tableguard.HasColumns([]string{"a"}).Validate(nil)
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("returns nil unchanged with AllowNone", func(t *testing.T) {
		out, err := tableguard.HasColumns([]string{"a"}, tableguard.AllowNone()).Validate(nil)
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("fails as missing column for values without column concept", func(t *testing.T) {
		_, err := tableguard.HasColumns([]string{"a", "b"}).Validate([]int{1, 2, 3})
		require.Error(t, err)
		assert.ErrorIs(t, err, tableguard.ErrMissingColumn)

		var missingErr *tableguard.MissingColumnError
		require.True(t, errors.As(err, &missingErr))
		assert.ElementsMatch(t, []string{"a", "b"}, missingErr.Columns)
		assert.Contains(t, err.Error(), "[]int")
	})

	t.Run("enumerates all missing columns", func(t *testing.T) {
		table := memtable.MustNew(memtable.Ints("a", 1))
		_, err := tableguard.HasColumns([]string{"a", "b", "c"}).Validate(table)
		require.Error(t, err)

		var missingErr *tableguard.MissingColumnError
		require.True(t, errors.As(err, &missingErr))
		assert.Equal(t, []string{"b", "c"}, missingErr.Columns)
	})

	t.Run("fails for zero-row table by default", func(t *testing.T) {
		table := memtable.MustNew(memtable.Ints("a"))
		_, err := tableguard.HasColumns([]string{"a"}).Validate(table)
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("passes zero-row table with AllowEmpty", func(t *testing.T) {
		table := memtable.MustNew(memtable.Ints("a"))
		out, err := tableguard.HasColumns([]string{"a"}, tableguard.AllowEmpty()).Validate(table)
		require.NoError(t, err)
		assert.Same(t, table, out)
	})

	t.Run("checks presence before emptiness", func(t *testing.T) {
		// Zero rows and a missing column: presence must win, even with AllowEmpty.
		table := memtable.MustNew(memtable.Ints("a"))
		_, err := tableguard.HasColumns([]string{"b"}, tableguard.AllowEmpty()).Validate(table)
		assert.ErrorIs(t, err, tableguard.ErrMissingColumn)
	})

	t.Run("returns the same table instance on success", func(t *testing.T) {
		table := memtable.MustNew(
			memtable.Ints("a", 1, 2),
			memtable.Strings("b", "x", "y"),
		)
		out, err := tableguard.HasColumns([]string{"a", "b"}).Validate(table)
		require.NoError(t, err)
		assert.Same(t, table, out)
	})

	t.Run("is idempotent on success", func(t *testing.T) {
		v := tableguard.HasColumns([]string{"a"})
		table := memtable.MustNew(memtable.Ints("a", 1))
		once, err := v.Validate(table)
		require.NoError(t, err)
		twice, err := v.Validate(once)
		require.NoError(t, err)
		assert.Same(t, once, twice)
	})
}
