// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/models"
)

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Error
}

// ---- Table test ----

func TestRoutes_AuthGate(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		token      bool
		wantStatus int
	}{
		{"list books is public", http.MethodGet, "/api/books", false, http.StatusOK},
		{"list authors is public", http.MethodGet, "/api/authors", false, http.StatusOK},
		{"list categories is public", http.MethodGet, "/api/categories", false, http.StatusOK},
		{"create author is public", http.MethodPost, "/api/authors", false, http.StatusCreated},
		{"create book needs token", http.MethodPost, "/api/books", false, http.StatusUnauthorized},
		{"update book needs token", http.MethodPut, "/api/books/1", false, http.StatusUnauthorized},
		{"delete book needs token", http.MethodDelete, "/api/books/1", false, http.StatusUnauthorized},
		{"delete author needs token", http.MethodDelete, "/api/authors/1", false, http.StatusUnauthorized},
		{"delete category needs token", http.MethodDelete, "/api/categories/1", false, http.StatusUnauthorized},
		{"delete book with token", http.MethodDelete, "/api/books/1", true, http.StatusOK},
		{"delete author with token", http.MethodDelete, "/api/authors/1", true, http.StatusOK},
		{"delete category with token", http.MethodDelete, "/api/categories/1", true, http.StatusOK},
	}

	router := newTestRouter(t, newTestServices(), Settings{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			if tt.token {
				withToken(req)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRoutes_PublicWritesSkipsAuthGate(t *testing.T) {
	router := newTestRouter(t, newTestServices(), Settings{PublicWrites: true})

	req := httptest.NewRequest(http.MethodDelete, "/api/books/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, newTestServices(), Settings{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNotFound, errorBody(t, rec))
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t, newTestServices(), Settings{})

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/books", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, method)
	}
}

func TestRoutes_Version(t *testing.T) {
	services := newTestServices()
	services.AppInfoService = &mockAppInfoService{version: "1.2.3"}
	router := newTestRouter(t, services, Settings{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestRoutes_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, newTestServices(), Settings{CORSAllowedOrigins: []string{"http://example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_GzipResponse(t *testing.T) {
	services := newTestServices()
	services.AuthorService = &mockAuthorService{
		listFn: func(context.Context) ([]models.Author, error) {
			return []models.Author{{ID: 1, Name: "Test"}}, nil
		},
	}
	router := newTestRouter(t, services, Settings{})

	req := httptest.NewRequest(http.MethodGet, "/api/authors", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer gz.Close()
	body, err := io.ReadAll(gz)
	require.NoError(t, err)

	var authors []models.Author
	require.NoError(t, json.Unmarshal(body, &authors))
	assert.Equal(t, "Test", authors[0].Name)
}

func TestRoutes_TraceIDHeaderEchoed(t *testing.T) {
	router := newTestRouter(t, newTestServices(), Settings{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
