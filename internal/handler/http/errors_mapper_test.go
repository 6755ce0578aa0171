// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
)

func invalid(field string, kind error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, &validators.FieldError{Field: field, Kind: kind})
}

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest, app.MsgInvalidJSON},
		{"invalid path id", ErrInvalidPathID, http.StatusNotFound, app.MsgNotFound},
		{"missing username", invalid(validators.FieldUsername, validators.ErrMissingField), http.StatusBadRequest, app.MsgCredentialsRequired},
		{"missing author id", invalid(validators.FieldAuthorID, validators.ErrMissingField), http.StatusBadRequest, app.MsgTitleAndAuthorRequired},
		{"categories payload", invalid(validators.FieldCategories, validators.ErrInvalidPayload), http.StatusBadRequest, app.MsgInvalidCategoriesFormat},
		{"category item payload", invalid(validators.FieldCategories+"[1]", validators.ErrInvalidPayload), http.StatusBadRequest, app.MsgInvalidCategoriesFormat},
		{"pages out of range", invalid(validators.FieldPages, validators.ErrOutOfRange), http.StatusBadRequest, "pages: value out of range"},
		{"isbn format", invalid(validators.FieldISBN, validators.ErrInvalidFormat), http.StatusBadRequest, "isbn: invalid format"},
		{"reference author", fmt.Errorf("x: %w: %w", service.ErrReferenceNotFound, store.ErrAuthorNotFound), http.StatusBadRequest, app.MsgAuthorNotFound},
		{"reference category", fmt.Errorf("x: %w: %w", service.ErrReferenceNotFound, store.ErrCategoryNotFound), http.StatusBadRequest, app.MsgCategoryNotFound},
		{"path author", fmt.Errorf("x: %w", store.ErrAuthorNotFound), http.StatusNotFound, app.MsgAuthorNotFound},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"username taken", store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameTaken},
		{"bad cover name", store.ErrInvalidCoverImageName, http.StatusNotFound, app.MsgCoverImageNotFound},
		{"body too large", bodyError(ErrInvalidForm, &http.MaxBytesError{Limit: 10}), http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
