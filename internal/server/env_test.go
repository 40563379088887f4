// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentVariables(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		envVars, err := loadServerConfig()
		require.NoError(t, err)
		assert.Equal(t, 3000, envVars.HTTPPort)
		assert.Equal(t, "0.0.0.0", envVars.HTTPHost)
		assert.Equal(t, "*", envVars.CORSAllowOrigins)
		assert.True(t, envVars.DisableStartupMessage)
	})

	t.Run("custom port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8080")
		envVars, err := loadServerConfig()
		require.NoError(t, err)
		assert.Equal(t, 8080, envVars.HTTPPort)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "655350")
		_, err := loadServerConfig()
		assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})

	t.Run("port not a number", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "http")
		_, err := loadServerConfig()
		assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})
}

func TestValidateEnvironmentVariables(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		config      *config
		expectError bool
	}{
		"negative port": {
			config:      &config{HTTPPort: -1, CORSAllowOrigins: "*"},
			expectError: true,
		},
		"port too high": {
			config:      &config{HTTPPort: 655350, CORSAllowOrigins: "*"},
			expectError: true,
		},
		"empty cors origins": {
			config:      &config{HTTPPort: 3000, CORSAllowOrigins: " "},
			expectError: true,
		},
		"valid": {
			config: &config{HTTPPort: 3000, CORSAllowOrigins: "http://localhost:5173"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := validateEnvironmentVariables(tc.config)
			if tc.expectError {
				require.ErrorIs(t, err, ErrEnvVariablesNotValid)
				return
			}
			require.NoError(t, err)
		})
	}
}
