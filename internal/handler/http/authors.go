// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
)

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.services.AuthorService.ListAuthors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if authors == nil {
		authors = []models.Author{}
	}

	utils.WriteJSON(w, authors, http.StatusOK)
}

func (h *Handler) createAuthor(w http.ResponseWriter, r *http.Request) {
	var req models.AuthorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	author, err := h.services.AuthorService.CreateAuthor(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, author, http.StatusCreated)
}

func (h *Handler) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.AuthorService.DeleteAuthor(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("id", id).Int64("user_id", userID).Msg("author deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAuthorDeleted}, http.StatusOK)
}
