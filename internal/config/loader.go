package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MENTORMATCH_CONFIG is set
//  3. env (prefix MENTORMATCH_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MENTORMATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MENTORMATCH_ADDR, MENTORMATCH_LOG_LEVEL, ...
	// Keys map to the koanf tags on the struct; underscores are preserved.
	envProvider := env.Provider("MENTORMATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "mentormatch_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultMaxMentees < 1:
		return fmt.Errorf("%w: default_max_mentees must be positive", ErrInvalidConfig)
	case c.MaxMenteesLimit < c.DefaultMaxMentees:
		return fmt.Errorf("%w: max_mentees_limit below default_max_mentees", ErrInvalidConfig)
	case c.ExportPath == "":
		return fmt.Errorf("%w: export_path must not be empty", ErrInvalidConfig)
	case c.ReportPath == "":
		return fmt.Errorf("%w: report_path must not be empty", ErrInvalidConfig)
	}
	return nil
}
