// Package config loads the treedist command-line configuration.
//
// Configuration is a TOML file; every key is optional and falls back to
// Default. Command-line flags override file values (see internal/cli).
//
// # Example
//
//	log_level = "debug"
//	seed      = 7
//	workers   = 4
//
//	[gen]
//	shape = "prufer"
//	n     = 5000
//
//	[verify]
//	trees     = 200
//	max_n     = 300
//	reference = "gonum"
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Reference oracles accepted by verify.
const (
	ReferenceBFS   = "bfs"
	ReferenceGonum = "gonum"
)

var (
	// ErrUnknownKey is returned when the file contains keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned when a value is outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the full CLI configuration.
type Config struct {
	LogLevel string       `toml:"log_level"`
	Seed     int64        `toml:"seed"`
	Workers  int          `toml:"workers"` // 0 = GOMAXPROCS
	Gen      GenConfig    `toml:"gen"`
	Verify   VerifyConfig `toml:"verify"`
}

// GenConfig holds defaults for the gen command.
type GenConfig struct {
	Shape string `toml:"shape"`
	N     int    `toml:"n"`
}

// VerifyConfig holds defaults for the verify command.
type VerifyConfig struct {
	Trees     int    `toml:"trees"`
	MaxN      int    `toml:"max_n"`
	Reference string `toml:"reference"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Seed:     1,
		Gen:      GenConfig{Shape: "random", N: 1000},
		Verify:   VerifyConfig{Trees: 100, MaxN: 200, Reference: ReferenceBFS},
	}
}

// Load reads path on top of Default and validates the result.
// An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q (want one of %v)", ErrInvalid, c.LogLevel, logLevels)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalid, c.Workers)
	}
	if c.Gen.N < 1 {
		return fmt.Errorf("%w: gen.n %d < 1", ErrInvalid, c.Gen.N)
	}
	if c.Verify.Trees < 1 {
		return fmt.Errorf("%w: verify.trees %d < 1", ErrInvalid, c.Verify.Trees)
	}
	if c.Verify.MaxN < 1 {
		return fmt.Errorf("%w: verify.max_n %d < 1", ErrInvalid, c.Verify.MaxN)
	}
	if c.Verify.Reference != ReferenceBFS && c.Verify.Reference != ReferenceGonum {
		return fmt.Errorf("%w: verify.reference %q", ErrInvalid, c.Verify.Reference)
	}
	return nil
}
