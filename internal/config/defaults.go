// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied when no other source sets a field.
const (
	DefaultHTTPAddress      = ":5000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultAuthRateLimit    = 5
	DefaultAuthRateBurst    = 10
	DefaultTokenIssuer      = "go-library-catalog"
	DefaultPasswordHashCost = 10
	DefaultVersion          = "dev"
	DefaultDBDriver         = DriverSQLite
	DefaultDSN              = "file:catalog.db?_foreign_keys=1"
	DefaultCoverImageDir    = "static/uploads"
	DefaultMaxUploadBytes   = 16 << 20
	DefaultAdapterAddress   = "http://localhost:5000"
	DefaultAdapterTimeout   = 10 * time.Second
	DefaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
				DSN:    DefaultDSN,
			},
			Files: Files{
				CoverImageDir:  DefaultCoverImageDir,
				MaxUploadBytes: DefaultMaxUploadBytes,
			},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
			AuthRateLimit:      DefaultAuthRateLimit,
			AuthRateBurst:      DefaultAuthRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
