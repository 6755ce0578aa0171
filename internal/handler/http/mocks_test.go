// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, credentials)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockAuthorService struct {
	createFn func(ctx context.Context, req models.AuthorRequest) (models.Author, error)
	listFn   func(ctx context.Context) ([]models.Author, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockAuthorService) CreateAuthor(ctx context.Context, req models.AuthorRequest) (models.Author, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Author{}, nil
}

func (m *mockAuthorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockAuthorService) DeleteAuthor(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCategoryService struct {
	createFn func(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	listFn   func(ctx context.Context) ([]models.Category, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Category{}, nil
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockBookService struct {
	createFn    func(ctx context.Context, req models.BookRequest, cover *models.CoverUpload) (models.Book, error)
	listFn      func(ctx context.Context) ([]models.Book, error)
	getFn       func(ctx context.Context, id int64) (models.Book, error)
	updateFn    func(ctx context.Context, id int64, req models.BookRequest) (models.Book, error)
	deleteFn    func(ctx context.Context, id int64) error
	openCoverFn func(ctx context.Context, name string) (io.ReadCloser, string, error)
}

func (m *mockBookService) CreateBook(ctx context.Context, req models.BookRequest, cover *models.CoverUpload) (models.Book, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req, cover)
	}
	return models.Book{}, nil
}

func (m *mockBookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockBookService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Book{}, nil
}

func (m *mockBookService) UpdateBook(ctx context.Context, id int64, req models.BookRequest) (models.Book, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.Book{}, nil
}

func (m *mockBookService) DeleteBook(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockBookService) OpenCover(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if m.openCoverFn != nil {
		return m.openCoverFn(ctx, name)
	}
	return nil, "", nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testValidToken is accepted by validTokenAuth.
const testValidToken = "valid.jwt.token"

// validTokenAuth accepts testValidToken as user 1 and rejects everything else.
func validTokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == testValidToken {
				return models.Token{UserID: 1}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

// newTestServices fills every service with an empty mock so routes never
// hit a nil interface.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     validTokenAuth(),
		AuthorService:   &mockAuthorService{},
		CategoryService: &mockCategoryService{},
		BookService:     &mockBookService{},
		AppInfoService:  &mockAppInfoService{version: "test"},
	}
}

func newTestRouter(t *testing.T, services *service.Services, settings Settings) http.Handler {
	t.Helper()
	return NewHandler(services, settings, logger.Nop()).Init()
}

func withToken(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+testValidToken)
	return r
}
