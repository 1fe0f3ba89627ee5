// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/on-the-ground/monads_in_go/effects/configkeys"
)

// Prefix is prepended to every environment variable name.
const Prefix = "MONADS_"

// Config holds the settings of the monads command.
type Config struct {
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogBufferSize     int    `env:"LOG_BUFFER_SIZE" envDefault:"16"`
	ConsoleBufferSize int    `env:"CONSOLE_BUFFER_SIZE" envDefault:"1"`
	BindingWorkers    int    `env:"BINDING_WORKERS" envDefault:"1"`
	PasswordPrompt    string `env:"PASSWORD_PROMPT" envDefault:"enter your password: "`
	MemoSize          uint32 `env:"MEMO_SIZE" envDefault:"64"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom parses Config from the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.LogBufferSize < 1 {
		return fmt.Errorf("%sLOG_BUFFER_SIZE must be positive, got %d", Prefix, c.LogBufferSize)
	}
	if c.ConsoleBufferSize < 1 {
		return fmt.Errorf("%sCONSOLE_BUFFER_SIZE must be positive, got %d", Prefix, c.ConsoleBufferSize)
	}
	if c.BindingWorkers < 1 {
		return fmt.Errorf("%sBINDING_WORKERS must be positive, got %d", Prefix, c.BindingWorkers)
	}
	if c.MemoSize < 1 {
		return fmt.Errorf("%sMEMO_SIZE must be positive, got %d", Prefix, c.MemoSize)
	}
	return nil
}

// Bindings exposes the settings to code running under the binding effect.
func (c Config) Bindings() map[string]any {
	return map[string]any{
		configkeys.ConfigEffectLogLevel:          c.LogLevel,
		configkeys.ConfigEffectLogBufferSize:     c.LogBufferSize,
		configkeys.ConfigEffectConsoleBufferSize: c.ConsoleBufferSize,
		configkeys.ConfigEffectConsolePrompt:     c.PasswordPrompt,
		configkeys.ConfigEffectBindingNumWorkers: c.BindingWorkers,
		configkeys.ConfigPipelineMemoSize:        c.MemoSize,
	}
}
