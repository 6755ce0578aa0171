// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
)

type Services struct {
	AuthService     AuthService
	AuthorService   AuthorService
	CategoryService CategoryService
	BookService     BookService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, validator validators.CatalogValidator, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		AuthorService:   NewAuthorService(storages.AuthorRepository, storages.CoverImageStorage, validator, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, validator, logger),
		BookService:     NewBookService(storages.BookRepository, storages.CoverImageStorage, validator, logger),
		AppInfoService:  appInfoService,
	}, nil
}
