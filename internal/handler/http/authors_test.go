// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
	"github.com/MKhiriev/go-library-catalog/models"
)

func newAuthorRouter(t *testing.T, authors *mockAuthorService) http.Handler {
	services := newTestServices()
	services.AuthorService = authors
	return newTestRouter(t, services, Settings{})
}

func TestListAuthors_EmptyIsArray(t *testing.T) {
	router := newAuthorRouter(t, &mockAuthorService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/authors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateAuthor_Success(t *testing.T) {
	var got models.AuthorRequest
	router := newAuthorRouter(t, &mockAuthorService{
		createFn: func(_ context.Context, req models.AuthorRequest) (models.Author, error) {
			got = req
			year := 1800
			return models.Author{ID: 1, Name: "Test", BirthYear: &year}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postJSON("/api/authors", `{"name":"Test","birth_year":1800}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.Value("Test"), got.Name)
	assert.Equal(t, models.Value("1800"), got.BirthYear)
	assert.False(t, got.Email.Present)

	var author map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &author))
	assert.Equal(t, float64(0), author["book_count"])
	assert.Equal(t, "Test", author["name"])
}

func TestCreateAuthor_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name: "birth year out of range",
			err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided,
				&validators.FieldError{Field: validators.FieldBirthYear, Kind: validators.ErrOutOfRange}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "birth_year: value out of range",
		},
		{
			name:        "email taken",
			err:         fmt.Errorf("author creation failed: %w", store.ErrAuthorEmailAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgAuthorEmailTaken,
		},
		{
			name:        "storage failure",
			err:         fmt.Errorf("author creation failed: %w", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthorRouter(t, &mockAuthorService{
				createFn: func(context.Context, models.AuthorRequest) (models.Author, error) {
					return models.Author{}, tt.err
				},
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, postJSON("/api/authors", `{"name":"Test"}`))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, errorBody(t, rec))
		})
	}
}

func TestDeleteAuthor(t *testing.T) {
	var deleted int64
	router := newAuthorRouter(t, &mockAuthorService{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withToken(httptest.NewRequest(http.MethodDelete, "/api/authors/12", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), deleted)
	assert.JSONEq(t, `{"message":"`+app.MsgAuthorDeleted+`"}`, rec.Body.String())
}

func TestDeleteAuthor_NotFound(t *testing.T) {
	router := newAuthorRouter(t, &mockAuthorService{
		deleteFn: func(context.Context, int64) error {
			return fmt.Errorf("author deletion failed: %w", store.ErrAuthorNotFound)
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withToken(httptest.NewRequest(http.MethodDelete, "/api/authors/12", nil)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgAuthorNotFound, errorBody(t, rec))
}

func TestDeleteAuthor_InvalidID(t *testing.T) {
	router := newAuthorRouter(t, &mockAuthorService{
		deleteFn: func(context.Context, int64) error {
			t.Fatal("service must not be called")
			return nil
		},
	})

	for _, id := range []string{"abc", "0", "-3"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, withToken(httptest.NewRequest(http.MethodDelete, "/api/authors/"+id, nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}
