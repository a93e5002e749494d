package tableguard

import "log/slog"

type loggedValidator struct {
	next Validator
	log  *slog.Logger
	name string
}

// Logged wraps a validator so failures are recorded through the given slog
// logger with the contract name and failure category as attributes. Outcomes
// are never altered; successes are logged at debug level only. A nil logger
// returns the validator unwrapped.
func Logged(v Validator, log *slog.Logger, name string) Validator {
	if log == nil {
		return v
	}
	return loggedValidator{next: v, log: log, name: name}
}

func (v loggedValidator) Validate(value any) (any, error) {
	out, err := v.next.Validate(value)
	if err != nil {
		v.log.Error("validation failed",
			slog.String("contract", v.name),
			slog.String("category", Category(err)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	v.log.Debug("validation passed", slog.String("contract", v.name))
	return out, nil
}
