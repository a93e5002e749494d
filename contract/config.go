package contract

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/matthiashuschle/tableguard"
)

// Config controls environment-driven contract loading.
type Config struct {
	Path   string `env:"TABLEGUARD_CONTRACTS" envDefault:"contracts.yaml"` // Path is the contract file location.
	Strict bool   `env:"TABLEGUARD_STRICT" envDefault:"false"`             // Strict rejects unknown keys in contract files.
}

// ErrParseConfig indicates invalid environment configuration.
var ErrParseConfig = errors.New("failed to parse contract config")

var defaultEnvLoaded sync.Once

// Load reads the configuration from the environment (loading a .env file
// first, if present) and parses the configured contract file.
func Load() (map[string]tableguard.Validator, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}
	return LoadFile(cfg.Path, cfg.Strict)
}
