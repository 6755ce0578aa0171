// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
)

type httpCatalogClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCatalogClient constructs a resty implementation of [CatalogClient].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
// A non-empty cfg.Token is installed via SetToken.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCatalogClient(cfg config.ClientAdapter, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	c := &httpCatalogClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errAddressNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CatalogClient]. It stores token whitespace-trimmed.
func (h *httpCatalogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CatalogClient].
func (h *httpCatalogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ─────────────────────────────────────────────
// Auth
// ─────────────────────────────────────────────

// Register implements [CatalogClient]. POST /api/register.
func (h *httpCatalogClient) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [CatalogClient]. POST /api/login; the access token of a
// successful response is stored via SetToken.
func (h *httpCatalogClient) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.AccessToken)
	h.logger.Debug().Int64("user_id", result.User.UserID).Msg("logged in")
	return result, nil
}

// ─────────────────────────────────────────────
// Authors and categories
// ─────────────────────────────────────────────

func (h *httpCatalogClient) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	if err := h.getJSON(ctx, "/api/authors", &authors); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func (h *httpCatalogClient) CreateAuthor(ctx context.Context, author AuthorPayload) (models.Author, error) {
	var created models.Author
	if err := h.sendJSON(ctx, resty.MethodPost, "/api/authors", author, &created); err != nil {
		return models.Author{}, fmt.Errorf("create author: %w", err)
	}
	return created, nil
}

func (h *httpCatalogClient) DeleteAuthor(ctx context.Context, id int64) error {
	if err := h.delete(ctx, "/api/authors/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

func (h *httpCatalogClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := h.getJSON(ctx, "/api/categories", &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (h *httpCatalogClient) CreateCategory(ctx context.Context, category CategoryPayload) (models.Category, error) {
	var created models.Category
	if err := h.sendJSON(ctx, resty.MethodPost, "/api/categories", category, &created); err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (h *httpCatalogClient) DeleteCategory(ctx context.Context, id int64) error {
	if err := h.delete(ctx, "/api/categories/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────
// Books and covers
// ─────────────────────────────────────────────

func (h *httpCatalogClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := h.getJSON(ctx, "/api/books", &books); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (h *httpCatalogClient) GetBook(ctx context.Context, id int64) (models.Book, error) {
	var book models.Book
	if err := h.getJSON(ctx, "/api/books/"+strconv.FormatInt(id, 10), &book); err != nil {
		return models.Book{}, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// CreateBook implements [CatalogClient]. POST /api/books.
func (h *httpCatalogClient) CreateBook(ctx context.Context, book BookPayload, cover *CoverFile) (models.Book, error) {
	if cover == nil {
		var created models.Book
		if err := h.sendJSON(ctx, resty.MethodPost, "/api/books", book, &created); err != nil {
			return models.Book{}, fmt.Errorf("create book: %w", err)
		}
		return created, nil
	}

	if cover.Filename == "" {
		return models.Book{}, fmt.Errorf("create book: %w", errEmptyCoverName)
	}

	form, err := bookFormData(book)
	if err != nil {
		return models.Book{}, fmt.Errorf("create book: %w", err)
	}

	var created models.Book
	resp, err := h.request(ctx).
		SetMultipartFormData(form).
		SetFileReader("cover_image", cover.Filename, cover.Content).
		SetResult(&created).
		Post("/api/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, fmt.Errorf("create book: %w", err)
	}

	return created, nil
}

func (h *httpCatalogClient) UpdateBook(ctx context.Context, id int64, book BookPayload) (models.Book, error) {
	var updated models.Book
	if err := h.sendJSON(ctx, resty.MethodPut, "/api/books/"+strconv.FormatInt(id, 10), book, &updated); err != nil {
		return models.Book{}, fmt.Errorf("update book: %w", err)
	}
	return updated, nil
}

func (h *httpCatalogClient) DeleteBook(ctx context.Context, id int64) error {
	if err := h.delete(ctx, "/api/books/"+strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// DownloadCover implements [CatalogClient]. GET /api/covers/{name}.
func (h *httpCatalogClient) DownloadCover(ctx context.Context, name string) ([]byte, string, error) {
	if name == "" {
		return nil, "", errEmptyCoverName
	}

	resp, err := h.request(ctx).Get("/api/covers/" + url.PathEscape(name))
	if err != nil {
		return nil, "", fmt.Errorf("download cover request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", fmt.Errorf("download cover: %w", err)
	}

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

// Version implements [CatalogClient]. GET /api/version.
func (h *httpCatalogClient) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// ---- Helpers ----

// request starts a request bound to ctx, carrying the bearer token if set.
func (h *httpCatalogClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpCatalogClient) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.request(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpCatalogClient) sendJSON(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Execute(method, path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpCatalogClient) delete(ctx context.Context, path string) error {
	resp, err := h.request(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	return mapHTTPError(resp)
}

// bookFormData flattens book into multipart form values. Categories travel
// as a JSON encoded string.
func bookFormData(book BookPayload) (map[string]string, error) {
	form := map[string]string{}
	if book.Title != "" {
		form["title"] = book.Title
	}
	if book.AuthorID != 0 {
		form["author_id"] = strconv.FormatInt(book.AuthorID, 10)
	}
	if book.ISBN != nil {
		form["isbn"] = *book.ISBN
	}
	if book.PublicationYear != nil {
		form["publication_year"] = strconv.Itoa(*book.PublicationYear)
	}
	if book.Pages != nil {
		form["pages"] = strconv.Itoa(*book.Pages)
	}
	if book.Description != nil {
		form["description"] = *book.Description
	}
	if book.Categories != nil {
		categories, err := json.Marshal(book.Categories)
		if err != nil {
			return nil, fmt.Errorf("encode categories: %w", err)
		}
		form["categories"] = string(categories)
	}
	return form, nil
}
