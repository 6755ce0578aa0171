// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// bcrypt cost bounds, see golang.org/x/crypto/bcrypt MinCost and MaxCost.
const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. All violations are
// reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		errs = append(errs, fmt.Errorf("%w: password hash cost must be between %d and %d",
			ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost))
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.Files.S3Bucket == "" && cfg.Storage.Files.CoverImageDir == "" {
		errs = append(errs, fmt.Errorf("%w: cover image directory or S3 bucket is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.Files.S3Bucket != "" && cfg.Storage.Files.S3Region == "" {
		errs = append(errs, fmt.Errorf("%w: S3 region is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.Files.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("%w: max upload size must be positive", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: server address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%w: auth rate limit and burst must be positive", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
