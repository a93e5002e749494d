package contract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthiashuschle/tableguard"
	"github.com/matthiashuschle/tableguard/contract"
	"github.com/matthiashuschle/tableguard/memtable"
)

const contractsYAML = `
contracts:
  daily_prices:
    allow_empty: true
    columns: [day, price]
    dtypes: {day: time, price: float}
    not_null: {price: all}
    unique: [day]
  audit_log:
    not_empty: true
`

func TestParse(t *testing.T) {
	t.Run("builds one validator per contract", func(t *testing.T) {
		validators, err := contract.Parse([]byte(contractsYAML), false)
		require.NoError(t, err)
		assert.Len(t, validators, 2)
		assert.Contains(t, validators, "daily_prices")
		assert.Contains(t, validators, "audit_log")
	})

	t.Run("built contract enforces its rules", func(t *testing.T) {
		validators, err := contract.Parse([]byte(contractsYAML), false)
		require.NoError(t, err)
		v := validators["daily_prices"]

		good := memtable.MustNew(
			memtable.Times("day"),
			memtable.Floats("price"),
		)
		out, err := v.Validate(good)
		require.NoError(t, err, "zero rows must pass with allow_empty")
		assert.Same(t, good, out)

		wrongKind := memtable.MustNew(
			memtable.Times("day"),
			memtable.Strings("price", "10.5"),
		)
		_, err = v.Validate(wrongKind)
		assert.ErrorIs(t, err, tableguard.ErrWrongDtype)

		missing := memtable.MustNew(memtable.Times("day"))
		_, err = v.Validate(missing)
		assert.ErrorIs(t, err, tableguard.ErrMissingColumn)
	})

	t.Run("not_empty contract rejects empty values", func(t *testing.T) {
		validators, err := contract.Parse([]byte(contractsYAML), false)
		require.NoError(t, err)

		_, err = validators["audit_log"].Validate([]string{})
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)
	})

	t.Run("allow flags keep their scope per rule", func(t *testing.T) {
		validators, err := contract.Parse([]byte(`
contracts:
  maybe_rows:
    not_empty: true
    allow_none: true
    allow_empty: true
    columns: [id]
`), false)
		require.NoError(t, err)
		v := validators["maybe_rows"]

		// allow_none reaches the not-empty rule.
		out, err := v.Validate(nil)
		require.NoError(t, err)
		assert.Nil(t, out)

		// allow_empty does not: zero-length values still fail not_empty.
		_, err = v.Validate([]int{})
		assert.ErrorIs(t, err, tableguard.ErrEmptyValue)

		// The column rule honors allow_empty once not_empty is off.
		lenient, err := contract.Parse([]byte(`
contracts:
  maybe_rows:
    allow_empty: true
    columns: [id]
`), false)
		require.NoError(t, err)
		empty := memtable.MustNew(memtable.Ints("id"))
		got, err := lenient["maybe_rows"].Validate(empty)
		require.NoError(t, err)
		assert.Same(t, empty, got)
	})

	t.Run("rejects unknown kind tags", func(t *testing.T) {
		_, err := contract.Parse([]byte(`
contracts:
  bad:
    dtypes: {x: varchar}
`), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `contract "bad"`)
	})

	t.Run("rejects unknown null policies", func(t *testing.T) {
		_, err := contract.Parse([]byte(`
contracts:
  bad:
    not_null: {x: most}
`), false)
		assert.Error(t, err)
	})

	t.Run("rejects contracts without rules", func(t *testing.T) {
		_, err := contract.Parse([]byte(`
contracts:
  bad:
    allow_none: true
`), false)
		assert.ErrorIs(t, err, contract.ErrEmptyContract)
	})

	t.Run("strict mode rejects unknown keys", func(t *testing.T) {
		data := []byte(`
contracts:
  typo:
    colums: [a]
`)
		_, err := contract.Parse(data, true)
		assert.ErrorIs(t, err, contract.ErrParseContracts)

		_, err = contract.Parse(data, false)
		assert.ErrorIs(t, err, contract.ErrEmptyContract)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := contract.Parse([]byte("contracts: ["), false)
		assert.ErrorIs(t, err, contract.ErrParseContracts)
	})

	t.Run("empty input yields no validators", func(t *testing.T) {
		validators, err := contract.Parse(nil, false)
		require.NoError(t, err)
		assert.Empty(t, validators)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("loads contracts from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contracts.yaml")
		require.NoError(t, os.WriteFile(path, []byte(contractsYAML), 0o600))

		validators, err := contract.LoadFile(path, false)
		require.NoError(t, err)
		assert.Len(t, validators, 2)
	})

	t.Run("fails for missing files", func(t *testing.T) {
		_, err := contract.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), false)
		assert.ErrorIs(t, err, contract.ErrParseContracts)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads path and strict mode from the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contracts.yaml")
		require.NoError(t, os.WriteFile(path, []byte(contractsYAML), 0o600))
		t.Setenv("TABLEGUARD_CONTRACTS", path)
		t.Setenv("TABLEGUARD_STRICT", "true")

		validators, err := contract.Load()
		require.NoError(t, err)
		assert.Len(t, validators, 2)
	})
}
