// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the catalog's business operations on top of
// the store repositories: authentication, author, category and book
// management, and cover image handling.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-library-catalog/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AuthorService interface {
	CreateAuthor(ctx context.Context, req models.AuthorRequest) (models.Author, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)

	// DeleteAuthor removes the author with all of its books and their
	// cover images.
	DeleteAuthor(ctx context.Context, id int64) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type BookService interface {
	// CreateBook validates req, stores the optional cover and persists the
	// book. The cover is removed again when persisting fails.
	CreateBook(ctx context.Context, req models.BookRequest, cover *models.CoverUpload) (models.Book, error)

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	UpdateBook(ctx context.Context, id int64, req models.BookRequest) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// OpenCover returns a stored cover image and its content type.
	OpenCover(ctx context.Context, name string) (io.ReadCloser, string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
