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

type authorService struct {
	authors   store.AuthorRepository
	covers    store.CoverImageStorage
	validator validators.CatalogValidator

	logger *logger.Logger
}

func NewAuthorService(authors store.AuthorRepository, covers store.CoverImageStorage, validator validators.CatalogValidator, logger *logger.Logger) AuthorService {
	return &authorService{
		authors:   authors,
		covers:    covers,
		validator: validator,
		logger:    logger,
	}
}

func (s *authorService) CreateAuthor(ctx context.Context, req models.AuthorRequest) (models.Author, error) {
	log := logger.FromContext(ctx)

	in, err := s.validator.ValidateAuthor(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*authorService.CreateAuthor").Msg("invalid author data provided")
		return models.Author{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	author, err := s.authors.CreateAuthor(ctx, in)
	if err != nil {
		log.Err(err).Str("func", "*authorService.CreateAuthor").Str("name", in.Name).Msg("author creation failed")
		return models.Author{}, fmt.Errorf("author creation failed: %w", err)
	}

	return author, nil
}

func (s *authorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	authors, err := s.authors.ListAuthors(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authorService.ListAuthors").Msg("listing authors failed")
		return nil, fmt.Errorf("listing authors failed: %w", err)
	}

	return authors, nil
}

// DeleteAuthor removes the author's rows first and only then the cover files
// of the removed books. A cover that cannot be removed is logged and left
// behind.
func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	covers, err := s.authors.DeleteAuthor(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*authorService.DeleteAuthor").Int64("id", id).Msg("author deletion failed")
		return fmt.Errorf("author deletion failed: %w", err)
	}

	for _, name := range covers {
		removeCover(ctx, s.covers, name)
	}

	return nil
}
