// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package remote

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultAuthPath = "/oauth/token"
)

var (
	ErrInvalidConfig = errors.New("remote destination configuration not valid")

	errMultipleAuthMethods = errors.New("LOG_API_TOKEN cannot be used together with LOG_API_CLIENT_ID and LOG_API_CLIENT_SECRET")
	errMissingClientSecret = errors.New("LOG_API_CLIENT_SECRET is required when LOG_API_CLIENT_ID is set")
	errMissingClientID     = errors.New("LOG_API_CLIENT_ID is required when LOG_API_CLIENT_SECRET is set")
	errUnsupportedScheme   = errors.New("endpoint scheme must be http or https")
	errNonPositiveTimeout  = errors.New("LOG_API_TIMEOUT must be greater than zero")
)

// config holds the remote endpoint settings.
type config struct {
	Endpoint     string        `env:"LOG_API_ENDPOINT,required"`
	Token        string        `env:"LOG_API_TOKEN"`
	ClientID     string        `env:"LOG_API_CLIENT_ID"`
	ClientSecret string        `env:"LOG_API_CLIENT_SECRET"`
	AuthEndpoint string        `env:"LOG_API_AUTH_ENDPOINT"`
	Timeout      time.Duration `env:"LOG_API_TIMEOUT" envDefault:"5s"`
}

// loadConfig parses and validates the LOG_API_* environment variables.
func loadConfig() (*config, error) {
	cfg := new(config)
	if err := env.Parse(cfg); err != nil {
		return nil, configError(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, configError(err)
	}

	return cfg, nil
}

// validate checks the endpoints and the auth settings and fills the default
// auth endpoint when client credentials are used.
func (c *config) validate() error {
	endpoint, err := parseEndpoint(c.Endpoint)
	if err != nil {
		return err
	}

	if c.Timeout <= 0 {
		return errNonPositiveTimeout
	}

	switch {
	case c.Token != "" && (c.ClientID != "" || c.ClientSecret != ""):
		return errMultipleAuthMethods
	case c.ClientID != "" && c.ClientSecret == "":
		return errMissingClientSecret
	case c.ClientID == "" && c.ClientSecret != "":
		return errMissingClientID
	}

	if c.AuthEndpoint == "" {
		authURL := url.URL{Scheme: endpoint.Scheme, Host: endpoint.Host, Path: defaultAuthPath}
		c.AuthEndpoint = authURL.String()
		return nil
	}

	_, err = parseEndpoint(c.AuthEndpoint)
	return err
}

func (c *config) usesClientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func parseEndpoint(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", errUnsupportedScheme, rawURL)
	}

	return parsed, nil
}

// configError unwraps the first env parsing error and marks it as a configuration error.
func configError(err error) error {
	var parseErr env.AggregateError
	if errors.As(err, &parseErr) && len(parseErr.Errors) > 0 {
		err = parseErr.Errors[0]
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
