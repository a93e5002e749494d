// Package contract builds tableguard validator chains from declarative YAML
// contract files, so the validation rules for each producing function live in
// configuration rather than code.
//
// A contract file maps contract names to rule sets:
//
//	contracts:
//	  daily_prices:
//	    allow_empty: true
//	    columns: [day, price]
//	    dtypes: {day: time, price: float}
//	    not_null: {price: all, note: any}
//	    unique: [day]
//	    single_value: [currency]
//
// Each contract becomes a tableguard.Chain applying the rules in the fixed
// order above. The allow_none and allow_empty flags apply to every rule of
// the contract. Unknown kind or policy tags are configuration errors raised
// at load time, never validation errors.
package contract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matthiashuschle/tableguard"
)

// Predefined errors for the contract package.
var (
	// ErrParseContracts indicates malformed contract YAML.
	ErrParseContracts = errors.New("failed to parse contracts")

	// ErrEmptyContract indicates a contract without any rules.
	ErrEmptyContract = errors.New("contract declares no rules")
)

type contractFile struct {
	Contracts map[string]contractSpec `yaml:"contracts"`
}

type contractSpec struct {
	AllowNone   bool              `yaml:"allow_none"`
	AllowEmpty  bool              `yaml:"allow_empty"`
	NotEmpty    bool              `yaml:"not_empty"`
	Columns     []string          `yaml:"columns"`
	Dtypes      map[string]string `yaml:"dtypes"`
	NotNull     map[string]string `yaml:"not_null"`
	Unique      []string          `yaml:"unique"`
	SingleValue []string          `yaml:"single_value"`
}

// Parse decodes contract YAML into ready-to-use validators, one per contract
// name. With strict enabled, unknown YAML keys are rejected.
func Parse(data []byte, strict bool) (map[string]tableguard.Validator, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)

	var file contractFile
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, errors.Join(ErrParseContracts, err)
	}

	validators := make(map[string]tableguard.Validator, len(file.Contracts))
	for name, spec := range file.Contracts {
		v, err := build(spec)
		if err != nil {
			return nil, fmt.Errorf("contract %q: %w", name, err)
		}
		validators[name] = v
	}
	return validators, nil
}

// LoadFile reads and parses a contract file.
func LoadFile(path string, strict bool) (map[string]tableguard.Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrParseContracts, err)
	}
	return Parse(data, strict)
}

func build(spec contractSpec) (tableguard.Validator, error) {
	// allow_empty only means something to the column rules; the not-empty
	// rule gets the allow_none flag alone.
	var notEmptyOpts, columnOpts []tableguard.Option
	if spec.AllowNone {
		notEmptyOpts = append(notEmptyOpts, tableguard.AllowNone())
		columnOpts = append(columnOpts, tableguard.AllowNone())
	}
	if spec.AllowEmpty {
		columnOpts = append(columnOpts, tableguard.AllowEmpty())
	}

	var chain tableguard.Chain
	if spec.NotEmpty {
		chain = append(chain, tableguard.NotEmpty(notEmptyOpts...))
	}
	if len(spec.Columns) > 0 {
		chain = append(chain, tableguard.HasColumns(spec.Columns, columnOpts...))
	}
	if len(spec.Dtypes) > 0 {
		dtypes := make(map[string]tableguard.Kind, len(spec.Dtypes))
		for col, tag := range spec.Dtypes {
			kind, err := tableguard.ParseKind(tag)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", col, err)
			}
			dtypes[col] = kind
		}
		chain = append(chain, tableguard.HasDtype(dtypes, columnOpts...))
	}
	if len(spec.NotNull) > 0 {
		policies := make(map[string]tableguard.NullPolicy, len(spec.NotNull))
		for col, tag := range spec.NotNull {
			policy, err := tableguard.ParseNullPolicy(tag)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", col, err)
			}
			policies[col] = policy
		}
		chain = append(chain, tableguard.NotNull(policies, columnOpts...))
	}
	if len(spec.Unique) > 0 {
		chain = append(chain, tableguard.Unique(spec.Unique, columnOpts...))
	}
	if len(spec.SingleValue) > 0 {
		chain = append(chain, tableguard.SingleValue(spec.SingleValue, columnOpts...))
	}

	if len(chain) == 0 {
		return nil, ErrEmptyContract
	}
	return chain, nil
}
