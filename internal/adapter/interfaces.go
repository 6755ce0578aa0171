// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the library catalog REST API.
//
// The primary abstraction is [CatalogClient], which hides request encoding,
// bearer token handling and response decoding. The package ships one
// implementation built on resty ([NewHTTPCatalogClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-library-catalog/models"
)

// CatalogClient defines communication with the library catalog server.
type CatalogClient interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// Login calls it on success.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// Register creates a new account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login authenticates and stores the returned access token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	ListAuthors(ctx context.Context) ([]models.Author, error)
	CreateAuthor(ctx context.Context, author AuthorPayload) (models.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category CategoryPayload) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// CreateBook sends a JSON body when cover is nil and a multipart form
	// with a cover_image file otherwise.
	CreateBook(ctx context.Context, book BookPayload, cover *CoverFile) (models.Book, error)

	// UpdateBook sends only the non-zero fields of book.
	UpdateBook(ctx context.Context, id int64, book BookPayload) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// DownloadCover fetches a stored cover image and its content type.
	DownloadCover(ctx context.Context, name string) ([]byte, string, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}

// AuthorPayload is the body of an author creation request.
type AuthorPayload struct {
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	BirthYear *int    `json:"birth_year,omitempty"`
}

// CategoryPayload is the body of a category creation request.
type CategoryPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// BookCategoryPayload links a book to a category.
type BookCategoryPayload struct {
	CategoryID int64   `json:"category_id"`
	Priority   int     `json:"priority,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// BookPayload is the body of a book creation or update request.
//
// Categories is sent only when non-nil; an empty non-nil slice clears the
// book's links on update.
type BookPayload struct {
	Title           string                `json:"title,omitempty"`
	AuthorID        int64                 `json:"author_id,omitempty"`
	ISBN            *string               `json:"isbn,omitempty"`
	PublicationYear *int                  `json:"publication_year,omitempty"`
	Pages           *int                  `json:"pages,omitempty"`
	Description     *string               `json:"description,omitempty"`
	Categories      []BookCategoryPayload `json:"categories,omitzero"`
}

// CoverFile is a cover image to upload with a new book.
type CoverFile struct {
	Filename string
	Content  io.Reader
}
