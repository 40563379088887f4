// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package shortener

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidConfig = errors.New("shortener configuration not valid")
)

// Config holds the demo shortener settings.
type Config struct {
	BaseURL   string `env:"SHORT_URL_BASE" envDefault:"http://localhost:3000"`
	StatsFile string `env:"STATS_FILE"`
}

// LoadConfig reads the shortener settings from the environment.
func LoadConfig() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: SHORT_URL_BASE: %w", ErrInvalidConfig, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%w: SHORT_URL_BASE must be an absolute URL", ErrInvalidConfig)
	}

	return cfg, nil
}

// NewServiceFromConfig builds a Service backed by the stub shortener and the stats file.
func NewServiceFromConfig(cfg *Config, emitter Emitter) *Service {
	return NewService(NewStub(cfg.BaseURL), NewFileStats(cfg.StatsFile), emitter)
}
