// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/go-playground/validator/v10"
)

// Field names used in [FieldError]. They match the JSON keys of the request.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldBirthYear       = "birth_year"
	FieldDescription     = "description"
	FieldTitle           = "title"
	FieldAuthorID        = "author_id"
	FieldISBN            = "isbn"
	FieldPublicationYear = "publication_year"
	FieldPages           = "pages"
	FieldCategories      = "categories"
	FieldCategoryID      = "category_id"
	FieldPriority        = "priority"
	FieldNotes           = "notes"
)

// Column size limits.
const (
	MaxAuthorNameLength   = 100
	MaxEmailLength        = 120
	MaxCategoryNameLength = 50
	MaxTitleLength        = 200
	MaxNotesLength        = 200

	MinYear     = 1000
	MinPages    = 1
	MaxPages    = 10000
	MinPriority = 1
	MaxPriority = 5
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	isbnPattern  = regexp.MustCompile(`^[0-9-]{10,17}$`)
)

// Option configures a validator built by [NewCatalogValidator].
type Option func(*catalogValidator)

// WithClock replaces the clock used to compute the current calendar year.
func WithClock(now func() time.Time) Option {
	return func(v *catalogValidator) {
		v.now = now
	}
}

type catalogValidator struct {
	v   *validator.Validate
	now func() time.Time
}

// NewCatalogValidator returns a [CatalogValidator] backed by
// go-playground/validator. Struct errors are reported under JSON tag names.
func NewCatalogValidator(opts ...Option) CatalogValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	cv := &catalogValidator{v: v, now: time.Now}
	for _, opt := range opts {
		opt(cv)
	}
	return cv
}

func (c *catalogValidator) ValidateCredentials(ctx context.Context, credentials models.Credentials) error {
	err := c.v.StructCtx(ctx, credentials)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return newFieldError(FieldUsername, ErrInvalidPayload)
	}

	first := validationErrs[0]
	switch first.Tag() {
	case "required":
		return newFieldError(first.Field(), ErrMissingField)
	case "max":
		return newFieldError(first.Field(), ErrOutOfRange)
	default:
		return newFieldError(first.Field(), ErrInvalidFormat)
	}
}

func (c *catalogValidator) ValidateAuthor(ctx context.Context, req models.AuthorRequest) (models.AuthorInput, error) {
	name, err := c.requiredString(ctx, FieldName, req.Name, MaxAuthorNameLength)
	if err != nil {
		return models.AuthorInput{}, err
	}

	email, err := c.email(ctx, req.Email)
	if err != nil {
		return models.AuthorInput{}, err
	}

	birthYear, err := c.year(ctx, FieldBirthYear, req.BirthYear)
	if err != nil {
		return models.AuthorInput{}, err
	}

	return models.AuthorInput{Name: name, Email: email, BirthYear: birthYear}, nil
}

func (c *catalogValidator) ValidateCategory(ctx context.Context, req models.CategoryRequest) (models.CategoryInput, error) {
	name, err := c.requiredString(ctx, FieldName, req.Name, MaxCategoryNameLength)
	if err != nil {
		return models.CategoryInput{}, err
	}

	return models.CategoryInput{Name: name, Description: optionalString(req.Description)}, nil
}

func (c *catalogValidator) ValidateBookCreate(ctx context.Context, req models.BookRequest) (models.BookInput, error) {
	title, err := c.requiredString(ctx, FieldTitle, req.Title, MaxTitleLength)
	if err != nil {
		return models.BookInput{}, err
	}

	if req.AuthorID.Empty() {
		return models.BookInput{}, newFieldError(FieldAuthorID, ErrMissingField)
	}
	authorID, err := positiveID(FieldAuthorID, req.AuthorID.Raw)
	if err != nil {
		return models.BookInput{}, err
	}

	in := models.BookInput{Title: title, AuthorID: authorID}

	if in.ISBN, err = isbn(req.ISBN); err != nil {
		return models.BookInput{}, err
	}
	if in.PublicationYear, err = c.year(ctx, FieldPublicationYear, req.PublicationYear); err != nil {
		return models.BookInput{}, err
	}
	if in.Pages, err = c.boundedInt(ctx, FieldPages, req.Pages, MinPages, MaxPages); err != nil {
		return models.BookInput{}, err
	}
	in.Description = optionalString(req.Description)

	if !req.Categories.Empty() {
		if in.Categories, err = c.categories(ctx, req.Categories.Raw); err != nil {
			return models.BookInput{}, err
		}
	}

	return in, nil
}

func (c *catalogValidator) ValidateBookUpdate(ctx context.Context, req models.BookRequest) (models.BookPatch, error) {
	var (
		patch models.BookPatch
		err   error
	)

	if req.Title.Present {
		title, err := c.requiredString(ctx, FieldTitle, req.Title, MaxTitleLength)
		if err != nil {
			return models.BookPatch{}, err
		}
		patch.Title = &title
	}

	if req.AuthorID.Present {
		if req.AuthorID.Empty() {
			return models.BookPatch{}, newFieldError(FieldAuthorID, ErrMissingField)
		}
		authorID, err := positiveID(FieldAuthorID, req.AuthorID.Raw)
		if err != nil {
			return models.BookPatch{}, err
		}
		patch.AuthorID = &authorID
	}

	if req.ISBN.Present {
		value, err := isbn(req.ISBN)
		if err != nil {
			return models.BookPatch{}, err
		}
		patch.ISBN = models.Patch[string]{Set: true, Value: value}
	}

	if req.PublicationYear.Present {
		value, err := c.year(ctx, FieldPublicationYear, req.PublicationYear)
		if err != nil {
			return models.BookPatch{}, err
		}
		patch.PublicationYear = models.Patch[int]{Set: true, Value: value}
	}

	if req.Pages.Present {
		value, err := c.boundedInt(ctx, FieldPages, req.Pages, MinPages, MaxPages)
		if err != nil {
			return models.BookPatch{}, err
		}
		patch.Pages = models.Patch[int]{Set: true, Value: value}
	}

	if req.Description.Present {
		patch.Description = models.Patch[string]{Set: true, Value: optionalString(req.Description)}
	}

	if req.Categories.Present {
		patch.SetCategories = true
		patch.Categories = []models.BookCategoryInput{}
		if !req.Categories.Empty() {
			if patch.Categories, err = c.categories(ctx, req.Categories.Raw); err != nil {
				return models.BookPatch{}, err
			}
		}
	}

	return patch, nil
}

// ---- Helpers ----

func (c *catalogValidator) requiredString(ctx context.Context, field string, f models.RawField, maxLen int) (string, error) {
	value := strings.TrimSpace(f.Raw)
	if f.Empty() || value == "" {
		return "", newFieldError(field, ErrMissingField)
	}
	if err := c.maxLength(ctx, field, value, maxLen); err != nil {
		return "", err
	}
	return value, nil
}

func (c *catalogValidator) maxLength(ctx context.Context, field, value string, maxLen int) error {
	if err := c.v.VarCtx(ctx, value, fmt.Sprintf("max=%d", maxLen)); err != nil {
		return newFieldError(field, ErrOutOfRange)
	}
	return nil
}

func (c *catalogValidator) email(ctx context.Context, f models.RawField) (*string, error) {
	if f.Empty() {
		return nil, nil
	}
	value := strings.TrimSpace(f.Raw)
	if !emailPattern.MatchString(value) {
		return nil, newFieldError(FieldEmail, ErrInvalidFormat)
	}
	if err := c.maxLength(ctx, FieldEmail, value, MaxEmailLength); err != nil {
		return nil, err
	}
	return &value, nil
}

func (c *catalogValidator) year(ctx context.Context, field string, f models.RawField) (*int, error) {
	return c.boundedInt(ctx, field, f, MinYear, c.now().Year())
}

// boundedInt parses an optional integer field and checks lo <= n <= hi.
func (c *catalogValidator) boundedInt(ctx context.Context, field string, f models.RawField, lo, hi int) (*int, error) {
	if f.Empty() {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(f.Raw))
	if err != nil {
		return nil, newFieldError(field, ErrNotANumber)
	}
	if err = c.v.VarCtx(ctx, n, fmt.Sprintf("gte=%d,lte=%d", lo, hi)); err != nil {
		return nil, newFieldError(field, ErrOutOfRange)
	}
	return &n, nil
}

// categoryLink is a single element of the categories payload.
type categoryLink struct {
	CategoryID models.RawField `json:"category_id"`
	Priority   models.RawField `json:"priority"`
	Notes      models.RawField `json:"notes"`
}

func (c *catalogValidator) categories(ctx context.Context, raw string) ([]models.BookCategoryInput, error) {
	var links []categoryLink
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, newFieldError(FieldCategories, ErrInvalidPayload)
	}

	result := make([]models.BookCategoryInput, 0, len(links))
	for i, link := range links {
		prefix := fmt.Sprintf("%s[%d].", FieldCategories, i)

		if link.CategoryID.Empty() {
			return nil, newFieldError(prefix+FieldCategoryID, ErrMissingField)
		}
		categoryID, err := positiveID(prefix+FieldCategoryID, link.CategoryID.Raw)
		if err != nil {
			return nil, err
		}

		priority := models.DefaultCategoryPriority
		if !link.Priority.Empty() {
			p, err := c.boundedInt(ctx, prefix+FieldPriority, link.Priority, MinPriority, MaxPriority)
			if err != nil {
				return nil, err
			}
			priority = *p
		}

		notes := optionalString(link.Notes)
		if notes != nil {
			if err = c.maxLength(ctx, prefix+FieldNotes, *notes, MaxNotesLength); err != nil {
				return nil, err
			}
		}

		result = append(result, models.BookCategoryInput{
			CategoryID: categoryID,
			Priority:   priority,
			Notes:      notes,
		})
	}

	return result, nil
}

func isbn(f models.RawField) (*string, error) {
	if f.Empty() {
		return nil, nil
	}
	value := strings.TrimSpace(f.Raw)
	if !isbnPattern.MatchString(value) {
		return nil, newFieldError(FieldISBN, ErrInvalidFormat)
	}
	return &value, nil
}

func positiveID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, newFieldError(field, ErrNotANumber)
	}
	return id, nil
}

// optionalString returns nil for absent, null or empty fields.
func optionalString(f models.RawField) *string {
	if f.Empty() {
		return nil
	}
	value := f.Raw
	return &value
}
