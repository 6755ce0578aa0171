// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only host no port",
			addr:     NetAddress{Host: "localhost", Port: 0},
			expected: "localhost:0",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectError:  false,
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectError:  false,
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:         "empty host listens on all interfaces",
			input:        ":5000",
			expectError:  false,
			expectedAddr: NetAddress{Host: "", Port: 5000},
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr.Host, addr.Host)
				assert.Equal(t, tt.expectedAddr.Port, addr.Port)
			}
		})
	}
}

// TestParseFlags tests parseFlags against explicit argument lists.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig, rest []string)
	}{
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig, rest []string) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Empty(t, rest)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "localhost:8080",
				"-d", "postgres://localhost/catalog",
				"-driver", "postgres",
				"-c", "/etc/catalog.json",
				"-token-sign-key", "key",
				"-token-issuer", "issuer",
				"-token-duration", "2h",
				"-request-timeout", "15s",
				"-cover-dir", "/tmp/covers",
				"-public-writes",
				"-log-level", "warn",
				"-server", "http://api.test",
			},
			validate: func(t *testing.T, cfg *StructuredConfig, rest []string) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "postgres://localhost/catalog", cfg.Storage.DB.DSN)
				assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
				assert.Equal(t, "/etc/catalog.json", cfg.JSONFilePath)
				assert.Equal(t, "key", cfg.App.TokenSignKey)
				assert.Equal(t, "issuer", cfg.App.TokenIssuer)
				assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
				assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "/tmp/covers", cfg.Storage.Files.CoverImageDir)
				assert.True(t, cfg.App.PublicWrites)
				assert.Equal(t, "warn", cfg.Log.Level)
				assert.Equal(t, "http://api.test", cfg.Adapter.HTTPAddress)
				assert.Empty(t, rest)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/alias.json"},
			validate: func(t *testing.T, cfg *StructuredConfig, rest []string) {
				assert.Equal(t, "/alias.json", cfg.JSONFilePath)
			},
		},
		{
			name: "positional arguments are returned",
			args: []string{"-server", "http://api.test", "books", "list"},
			validate: func(t *testing.T, cfg *StructuredConfig, rest []string) {
				assert.Equal(t, "http://api.test", cfg.Adapter.HTTPAddress)
				assert.Equal(t, []string{"books", "list"}, rest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg, rest)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	cfg, _, err := parseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, _, err := parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, _, err := parseFlags([]string{"-token-duration", "forever"})
	assert.Error(t, err)
}

func TestNetAddress_SetAndString(t *testing.T) {
	for _, in := range []string{"localhost:8080", "127.0.0.1:5000", ":5000"} {
		t.Run(in, func(t *testing.T) {
			var addr NetAddress
			require.NoError(t, addr.Set(in))
			assert.Equal(t, in, addr.String())
		})
	}
}
