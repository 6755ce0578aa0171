// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks raw request input against the catalog's format
// and business rules and coerces it into typed values.
//
// Core concepts:
//   - CatalogValidator: one method per request kind. Each method either
//     returns the typed input ready for the service layer or a *FieldError
//     naming the offending field and its failure kind.
//   - Failure kinds are sentinel errors (ErrMissingField, ErrInvalidFormat,
//     ErrNotANumber, ErrOutOfRange, ErrInvalidPayload) matched with errors.Is.
//
// Validators are pure: the only external input is the clock used for the
// upper bound of year fields, which can be replaced with WithClock.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-library-catalog/models"
)

// CatalogValidator validates and coerces catalog request payloads.
type CatalogValidator interface {
	// ValidateCredentials checks a register or login payload.
	ValidateCredentials(ctx context.Context, credentials models.Credentials) error

	// ValidateAuthor checks an author creation payload.
	ValidateAuthor(ctx context.Context, req models.AuthorRequest) (models.AuthorInput, error)

	// ValidateCategory checks a category creation payload.
	ValidateCategory(ctx context.Context, req models.CategoryRequest) (models.CategoryInput, error)

	// ValidateBookCreate checks a book creation payload. Category links
	// without a priority get [models.DefaultCategoryPriority].
	ValidateBookCreate(ctx context.Context, req models.BookRequest) (models.BookInput, error)

	// ValidateBookUpdate checks a partial book update. Only present fields
	// end up in the patch; null or empty values clear optional fields.
	ValidateBookUpdate(ctx context.Context, req models.BookRequest) (models.BookPatch, error)
}
