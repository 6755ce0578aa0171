// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
)

type categoryService struct {
	categories store.CategoryRepository
	validator  validators.CatalogValidator

	logger *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, validator validators.CatalogValidator, logger *logger.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		validator:  validator,
		logger:     logger,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	in, err := s.validator.ValidateCategory(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*categoryService.CreateCategory").Msg("invalid category data provided")
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	category, err := s.categories.CreateCategory(ctx, in)
	if err != nil {
		log.Err(err).Str("func", "*categoryService.CreateCategory").Str("name", in.Name).Msg("category creation failed")
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryService.ListCategories").Msg("listing categories failed")
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}

	return categories, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryService.DeleteCategory").Int64("id", id).Msg("category deletion failed")
		return fmt.Errorf("category deletion failed: %w", err)
	}

	return nil
}
