// SPDX-License-Identifier: MIT

// Package config loads matcalc settings from an optional TOML file and
// MATCALC_* environment variables. Precedence, lowest first: defaults, file,
// environment. Command-line flags are applied on top by package cli.
//
//	output    = "yaml"   # text | json | yaml
//	precision = 4        # -1 keeps every digit
//	verify    = true     # cross-check det/inverse against gonum
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MATCALC_"

// Defaults.
const (
	DefaultOutput    = "text"
	DefaultPrecision = -1
	DefaultVerify    = false
	maxPrecision     = 17
)

var (
	// ErrUnknownKey is returned when the file carries keys Config does not know.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidValue is returned for out-of-domain values.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config holds the effective CLI settings.
type Config struct {
	Output    string `toml:"output"    env:"OUTPUT"`
	Precision int    `toml:"precision" env:"PRECISION"`
	Verify    bool   `toml:"verify"    env:"VERIFY"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Output: DefaultOutput, Precision: DefaultPrecision, Verify: DefaultVerify}
}

// Load reads path (skipped when empty), then applies environment overrides
// and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its domain and normalizes Output to lower case.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: output %q (want text, json or yaml)", ErrInvalidValue, c.Output)
	}
	if c.Precision < -1 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: precision %d (want -1..%d)", ErrInvalidValue, c.Precision, maxPrecision)
	}

	return nil
}
