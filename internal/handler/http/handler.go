// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
)

// Settings holds the transport options of the HTTP handler.
type Settings struct {
	// PublicWrites disables the bearer token check on mutating routes.
	PublicWrites bool

	// MaxUploadBytes limits the body of a book creation request.
	// Zero disables the limit.
	MaxUploadBytes int64

	CORSAllowedOrigins []string

	// AuthRateLimit is the per-IP request rate of register and login.
	// Zero or less disables rate limiting.
	AuthRateLimit float64
	AuthRateBurst int
}

// NewSettings picks the handler settings out of the application config.
func NewSettings(cfg config.StructuredConfig) Settings {
	return Settings{
		PublicWrites:       cfg.App.PublicWrites,
		MaxUploadBytes:     cfg.Storage.Files.MaxUploadBytes,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AuthRateLimit:      cfg.Server.AuthRateLimit,
		AuthRateBurst:      cfg.Server.AuthRateBurst,
	}
}

type Handler struct {
	services *service.Services
	settings Settings

	authLimiter *keyedRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
	if settings.AuthRateLimit > 0 {
		h.authLimiter = newKeyedRateLimiter(settings.AuthRateLimit, settings.AuthRateBurst)
	}

	logger.Info().Bool("public_writes", settings.PublicWrites).Msg("http handler created")
	return h
}
