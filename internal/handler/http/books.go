// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
)

// coverImageField is the multipart file field carrying the cover image.
const coverImageField = "cover_image"

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.ListBooks(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	book, err := h.services.BookService.GetBook(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

// createBook accepts either a JSON body or a multipart form with an optional
// cover_image file. In a form, categories is a JSON encoded string.
func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	if h.settings.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.settings.MaxUploadBytes)
	}

	var (
		req   models.BookRequest
		cover *models.CoverUpload
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			writeServiceError(w, r, bodyError(ErrInvalidForm, err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		req = bookRequestFromForm(r.MultipartForm)

		file, header, err := r.FormFile(coverImageField)
		switch {
		case errors.Is(err, http.ErrMissingFile):
			// book without a cover
		case err != nil:
			writeServiceError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err))
			return
		default:
			defer file.Close()
			if header.Filename != "" {
				cover = coverUpload(header, file)
			}
		}
	} else if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	book, err := h.services.BookService.CreateBook(r.Context(), req, cover)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", book.ID).Bool("cover", book.CoverImage != nil).Msg("book created")
	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.BookRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	book, err := h.services.BookService.UpdateBook(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.BookService.DeleteBook(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("id", id).Int64("user_id", userID).Msg("book deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgBookDeleted}, http.StatusOK)
}

// getCover streams a stored cover image.
func (h *Handler) getCover(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, contentType, err := h.services.BookService.OpenCover(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer body.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, body); err != nil {
		logger.FromRequest(r).Err(err).Str("cover", name).Msg("streaming cover image failed")
	}
}

// ---- Helpers ----

func bookRequestFromForm(form *multipart.Form) models.BookRequest {
	return models.BookRequest{
		Title:           formField(form, "title"),
		AuthorID:        formField(form, "author_id"),
		ISBN:            formField(form, "isbn"),
		PublicationYear: formField(form, "publication_year"),
		Pages:           formField(form, "pages"),
		Description:     formField(form, "description"),
		Categories:      formField(form, "categories"),
	}
}

func formField(form *multipart.Form, key string) models.RawField {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return models.RawField{}
	}
	return models.Value(values[0])
}

func coverUpload(header *multipart.FileHeader, file multipart.File) *models.CoverUpload {
	return &models.CoverUpload{
		Filename:    header.Filename,
		ContentType: headerContentType(header.Header),
		Size:        header.Size,
		Content:     file,
	}
}

func headerContentType(h textproto.MIMEHeader) string {
	if ct := h.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
