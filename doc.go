// Package tableguard provides declarative, composable return-value validation
// for functions that produce tabular (columnar) data. A caller wraps a
// function with one or more validators; each call's result is checked against
// a contract — non-empty, required columns present, correct column types,
// null policy, uniqueness, single-valuedness — before being handed back. On
// violation a typed error from a small taxonomy is returned instead of
// letting malformed data propagate silently.
//
// # Architecture
//
// The package is built around three small pieces:
//
//   - Table / Column – the capability interfaces a columnar value must
//     implement: enumerate column names, expose cells, null masks, and a
//     declared type tag (Kind). The package consumes tables, it never
//     constructs or mutates them; memtable is the reference implementation
//     and the sqltable, pgtable, and mongotable packages materialize
//     external result sets into it.
//   - Validator – a single-method interface whose Validate returns the value
//     unchanged or a typed error. All column-based validators share one
//     concrete column contract (nil check, presence check, emptiness check)
//     parameterized by an injected detail check, so HasDtype, NotNull,
//     Unique, and SingleValue differ only in that final step.
//   - the error taxonomy – one root sentinel (ErrValidation) with a category
//     sentinel per failure class and structured error types carrying the
//     offending columns and values.
//
// Validators hold only configuration frozen at construction time; they are
// stateless between calls and safe for concurrent use without locking.
//
// # Usage
//
//	validate := tableguard.Chain{
//		tableguard.HasDtype(map[string]tableguard.Kind{
//			"day":   tableguard.KindTime,
//			"price": tableguard.KindFloat,
//		}),
//		tableguard.NotNull(map[string]tableguard.NullPolicy{
//			"price": tableguard.AllNotNull,
//		}),
//		tableguard.Unique([]string{"day"}),
//	}
//
//	loadPrices := tableguard.WrapContext(validate, fetchDailyPrices)
//	prices, err := loadPrices(ctx)
//	if errors.Is(err, tableguard.ErrValidation) {
//		// malformed result set, inspect the category with errors.As
//	}
//
// Validate can equally be called directly on a bare value, outside any
// wrapped function.
//
// # Error Handling
//
// Structural checks (HasDtype, NotNull) aggregate every offending column into
// one error; content checks (Unique, SingleValue) fail fast on the first
// offender. No validator catches or downgrades another's error, and nothing
// is retried: a validation failure is always surfaced to the caller.
package tableguard
