package tableguard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthiashuschle/tableguard"
	"github.com/matthiashuschle/tableguard/memtable"
)

func TestNotEmpty(t *testing.T) {
	t.Run("fails for nil by default", func(t *testing.T) {
		_, err := tableguard.NotEmpty().Validate(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
		assert.ErrorIs(t, err, tableguard.ErrValidation)
	})

	t.Run("returns nil unchanged with AllowNone", func(t *testing.T) {
		out, err := tableguard.NotEmpty(tableguard.AllowNone()).Validate(nil)
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("fails for empty slice", func(t *testing.T) {
		_, err := tableguard.NotEmpty().Validate([]int{})
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("fails for nil slice", func(t *testing.T) {
		var values []string
		_, err := tableguard.NotEmpty().Validate(values)
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		_, err := tableguard.NotEmpty().Validate("")
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("fails for empty map", func(t *testing.T) {
		_, err := tableguard.NotEmpty().Validate(map[string]int{})
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("returns non-empty slice unchanged", func(t *testing.T) {
		values := []int{1}
		out, err := tableguard.NotEmpty().Validate(values)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, out)
	})

	t.Run("passes scalar by default", func(t *testing.T) {
		out, err := tableguard.NotEmpty().Validate(1)
		require.NoError(t, err)
		assert.Equal(t, 1, out)
	})

	t.Run("fails scalar with DisallowScalar", func(t *testing.T) {
		_, err := tableguard.NotEmpty(tableguard.DisallowScalar()).Validate(1)
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("uses row count for tables", func(t *testing.T) {
		empty := memtable.MustNew(memtable.Ints("id"))
		_, err := tableguard.NotEmpty().Validate(empty)
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)

		filled := memtable.MustNew(memtable.Ints("id", 1, 2))
		out, err := tableguard.NotEmpty().Validate(filled)
		require.NoError(t, err)
		assert.Same(t, filled, out)
	})

	t.Run("is idempotent on success", func(t *testing.T) {
		v := tableguard.NotEmpty()
		once, err := v.Validate([]int{1, 2})
		require.NoError(t, err)
		twice, err := v.Validate(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("error message names the type", func(t *testing.T) {
		_, err := tableguard.NotEmpty().Validate([]string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "[]string")

		var emptyErr *tableguard.EmptyValueError
		require.True(t, errors.As(err, &emptyErr))
	})
}
