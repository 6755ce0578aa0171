// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is matched top to bottom. Reference failures must come
// before the plain NotFound entries: a missing author referenced by a book
// is a bad request, a missing author addressed by the path is not found.
var errorMappings = []errorMapping{
	{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidForm, http.StatusBadRequest, app.MsgInvalidForm},
	{ErrInvalidPathID, http.StatusNotFound, app.MsgNotFound},

	{service.ErrInvalidImageFormat, http.StatusBadRequest, app.MsgInvalidImageFormat},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrReferenceNotFound, http.StatusBadRequest, ""},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameTaken},
	{store.ErrAuthorEmailAlreadyExists, http.StatusConflict, app.MsgAuthorEmailTaken},
	{store.ErrCategoryNameAlreadyExists, http.StatusConflict, app.MsgCategoryNameTaken},
	{store.ErrDuplicateBookCategory, http.StatusConflict, app.MsgDuplicateBookCategory},

	{store.ErrAuthorNotFound, http.StatusNotFound, app.MsgAuthorNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound, app.MsgCategoryNotFound},
	{store.ErrBookNotFound, http.StatusNotFound, app.MsgBookNotFound},
	{store.ErrCoverImageNotFound, http.StatusNotFound, app.MsgCoverImageNotFound},
	{store.ErrInvalidCoverImageName, http.StatusNotFound, app.MsgCoverImageNotFound},
}

// responseFromError returns the status code and client message for err.
// Unknown errors become 500 with a generic message.
func responseFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		message := m.message
		if fieldErr := (*validators.FieldError)(nil); errors.As(err, &fieldErr) {
			message = fieldErrorMessage(fieldErr)
		} else if message == "" {
			message = referenceMessage(err)
		}
		return m.status, message
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().AnErr("reason", err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

func fieldErrorMessage(fieldErr *validators.FieldError) string {
	switch {
	case errors.Is(fieldErr, validators.ErrMissingField) &&
		(fieldErr.Field == validators.FieldTitle || fieldErr.Field == validators.FieldAuthorID):
		return app.MsgTitleAndAuthorRequired
	case fieldErr.Field == validators.FieldUsername || fieldErr.Field == validators.FieldPassword:
		if errors.Is(fieldErr, validators.ErrMissingField) || errors.Is(fieldErr, validators.ErrInvalidPayload) {
			return app.MsgCredentialsRequired
		}
	case fieldErr.Field == validators.FieldCategories && errors.Is(fieldErr, validators.ErrInvalidPayload):
		return app.MsgInvalidCategoriesFormat
	case strings.HasPrefix(fieldErr.Field, validators.FieldCategories+"[") && errors.Is(fieldErr, validators.ErrInvalidPayload):
		return app.MsgInvalidCategoriesFormat
	}

	return fieldErr.Error()
}

func referenceMessage(err error) string {
	if errors.Is(err, store.ErrCategoryNotFound) {
		return app.MsgCategoryNotFound
	}
	return app.MsgAuthorNotFound
}
