// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
)

type bookService struct {
	books     store.BookRepository
	covers    store.CoverImageStorage
	validator validators.CatalogValidator
	names     nameGenerator

	logger *logger.Logger
}

func NewBookService(books store.BookRepository, covers store.CoverImageStorage, validator validators.CatalogValidator, logger *logger.Logger) BookService {
	return newBookService(books, covers, validator, utils.NewUUIDGenerator(), logger)
}

func newBookService(books store.BookRepository, covers store.CoverImageStorage, validator validators.CatalogValidator, names nameGenerator, logger *logger.Logger) *bookService {
	return &bookService{
		books:     books,
		covers:    covers,
		validator: validator,
		names:     names,
		logger:    logger,
	}
}

func (s *bookService) CreateBook(ctx context.Context, req models.BookRequest, cover *models.CoverUpload) (models.Book, error) {
	log := logger.FromContext(ctx)

	in, err := s.validator.ValidateBookCreate(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*bookService.CreateBook").Msg("invalid book data provided")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if cover != nil {
		name, err := saveCover(ctx, s.covers, s.names, cover)
		if err != nil {
			log.Err(err).Str("func", "*bookService.CreateBook").Str("filename", cover.Filename).Msg("cover upload rejected")
			return models.Book{}, err
		}
		in.CoverImage = &name
	}

	book, err := s.books.CreateBook(ctx, in)
	if err != nil {
		log.Err(err).Str("func", "*bookService.CreateBook").Int64("author_id", in.AuthorID).Msg("book creation failed")
		if in.CoverImage != nil {
			removeCover(ctx, s.covers, *in.CoverImage)
		}
		return models.Book{}, wrapReferenceError("book creation failed", err)
	}

	return book, nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.books.ListBooks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.ListBooks").Msg("listing books failed")
		return nil, fmt.Errorf("listing books failed: %w", err)
	}

	return books, nil
}

func (s *bookService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	book, err := s.books.GetBook(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.GetBook").Int64("id", id).Msg("getting book failed")
		return models.Book{}, fmt.Errorf("getting book failed: %w", err)
	}

	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req models.BookRequest) (models.Book, error) {
	log := logger.FromContext(ctx)

	patch, err := s.validator.ValidateBookUpdate(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*bookService.UpdateBook").Int64("id", id).Msg("invalid book data provided")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	book, err := s.books.UpdateBook(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*bookService.UpdateBook").Int64("id", id).Msg("book update failed")
		return models.Book{}, wrapReferenceError("book update failed", err)
	}

	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	cover, err := s.books.DeleteBook(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.DeleteBook").Int64("id", id).Msg("book deletion failed")
		return fmt.Errorf("book deletion failed: %w", err)
	}

	if cover != nil {
		removeCover(ctx, s.covers, *cover)
	}

	return nil
}

func (s *bookService) OpenCover(ctx context.Context, name string) (io.ReadCloser, string, error) {
	r, contentType, err := s.covers.OpenCoverImage(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookService.OpenCover").Str("cover", name).Msg("opening cover image failed")
		return nil, "", fmt.Errorf("opening cover image failed: %w", err)
	}

	return r, contentType, nil
}

// wrapReferenceError marks a missing author or category as a reference
// failure of the request. A missing book stays a plain NotFound.
func wrapReferenceError(msg string, err error) error {
	if errors.Is(err, store.ErrAuthorNotFound) || errors.Is(err, store.ErrCategoryNotFound) {
		return fmt.Errorf("%s: %w: %w", msg, ErrReferenceNotFound, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
