// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.settings.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// unknown routes and unsupported methods look the same to the client
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		// read-only and creation routes without authorization
		r.Get("/authors", h.listAuthors)
		r.Post("/authors", h.createAuthor)
		r.Get("/categories", h.listCategories)
		r.Post("/categories", h.createCategory)
		r.Get("/books", h.listBooks)
		r.Get("/books/{id}", h.getBook)
		r.Get("/covers/{name}", h.getCover)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Delete("/authors/{id}", h.deleteAuthor)
			r.Delete("/categories/{id}", h.deleteCategory)
			r.Post("/books", h.createBook)
			r.Put("/books/{id}", h.updateBook)
			r.Delete("/books/{id}", h.deleteBook)
		})
	})

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
