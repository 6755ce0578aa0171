// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the catalog API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token sent with mutating requests. May be empty.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// LogLevel is the zerolog level name used by the client logger.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from
// environment variables, command-line flags, an optional JSON file and the
// defaults. Server-only settings are not validated.
//
// The returned slice holds the positional arguments left after the flags,
// i.e. the client command and its parameters.
func GetClientConfig() (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults()

	cfg, err := b.merge()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		LogLevel: cfg.Log.Level,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, nil, err
	}

	return clientCfg, b.args, nil
}
