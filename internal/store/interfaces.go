// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the data access layer of the catalog. It persists users,
// authors, categories, books and book category links in PostgreSQL or
// SQLite, and keeps uploaded cover images in a local directory or an S3
// bucket.
//
// Every write runs inside a single transaction. Cascading deletes are
// performed explicitly by the repositories; the schema declares none.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-library-catalog/models"
)

// UserRepository persists login accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// Returns [ErrUsernameAlreadyExists] if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// AuthorRepository persists authors.
type AuthorRepository interface {
	CreateAuthor(ctx context.Context, in models.AuthorInput) (models.Author, error)

	// ListAuthors returns every author with its book count, ordered by ID.
	ListAuthors(ctx context.Context) ([]models.Author, error)

	// DeleteAuthor removes the author, its books and their category links.
	// It returns the cover image names of the removed books.
	DeleteAuthor(ctx context.Context, id int64) ([]string, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	// DeleteCategory removes the category and every link to it.
	DeleteCategory(ctx context.Context, id int64) error
}

// BookRepository persists books together with their category links.
type BookRepository interface {
	// CreateBook inserts the book and its links in one transaction and
	// returns the stored book with denormalized names.
	CreateBook(ctx context.Context, in models.BookInput) (models.Book, error)

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// UpdateBook applies the present fields of patch and refreshes
	// updated_at. When patch.SetCategories is true all links are replaced.
	UpdateBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error)

	// DeleteBook removes the book and its links. It returns the removed
	// book's cover image name, if any.
	DeleteBook(ctx context.Context, id int64) (*string, error)
}

// CoverImageStorage keeps uploaded cover images by name.
type CoverImageStorage interface {
	// SaveCoverImage stores the content of r under name.
	SaveCoverImage(ctx context.Context, name string, r io.Reader, contentType string) error

	// OpenCoverImage returns the stored image and its content type. The
	// caller must close the reader. Returns [ErrCoverImageNotFound] when
	// nothing is stored under name.
	OpenCoverImage(ctx context.Context, name string) (io.ReadCloser, string, error)

	// DeleteCoverImage removes the image. Deleting a missing image is not
	// an error.
	DeleteCoverImage(ctx context.Context, name string) error
}

// ErrorClassificator maps driver-specific errors to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
