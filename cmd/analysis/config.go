package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds analysis settings parsed from environment variables.
type Config struct {
	// Capacity is the item count the filter is sized for; the tool inserts
	// exactly this many generated keys.
	Capacity uint64 `koanf:"capacity" validate:"required,gte=1"`

	// FPRate is the target false positive rate in (0, 1).
	FPRate float64 `koanf:"fp_rate" validate:"required,gt=0,lt=1"`

	// Probes is how many absent keys to test when measuring the observed
	// false positive rate.
	Probes uint64 `koanf:"probes" validate:"required,gte=1"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// defaultConfig is the configuration used when no environment overrides
// are set: a million-key filter at 1%, measured with a million probes.
var defaultConfig = Config{
	Capacity: 1_000_000,
	FPRate:   0.01,
	Probes:   1_000_000,
	Env:      "dev",
	LogLevel: "info",
}

// loadConfig parses BLOOM_-prefixed environment variables over the
// defaults and validates the result.
func loadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "BLOOM_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "BLOOM_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
