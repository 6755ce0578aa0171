// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"io"
)

// RawField is a request field captured before validation.
//
// Present reports whether the key appeared in the request at all, Null
// whether its value was JSON null. Raw holds the value as text: JSON strings
// are unquoted, every other JSON token (numbers, arrays, objects, booleans)
// is kept verbatim. Multipart form values are always stored as-is.
type RawField struct {
	Present bool
	Null    bool
	Raw     string
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *RawField) UnmarshalJSON(data []byte) error {
	f.Present = true

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		f.Null = true
		f.Raw = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		f.Raw = s
		return nil
	}

	f.Raw = string(trimmed)
	return nil
}

// Empty reports whether the field is absent, null or an empty string.
func (f RawField) Empty() bool {
	return !f.Present || f.Null || f.Raw == ""
}

// Value builds a present [RawField] holding s. It is used for multipart form
// values, which carry no JSON typing.
func Value(s string) RawField {
	return RawField{Present: true, Raw: s}
}

// AuthorRequest is the raw body of POST /api/authors.
type AuthorRequest struct {
	Name      RawField `json:"name"`
	Email     RawField `json:"email"`
	BirthYear RawField `json:"birth_year"`
}

// CategoryRequest is the raw body of POST /api/categories.
type CategoryRequest struct {
	Name        RawField `json:"name"`
	Description RawField `json:"description"`
}

// BookRequest is the raw body of POST /api/books and PUT /api/books/{id}.
// Categories holds either a JSON array or a string containing one.
type BookRequest struct {
	Title           RawField `json:"title"`
	AuthorID        RawField `json:"author_id"`
	ISBN            RawField `json:"isbn"`
	PublicationYear RawField `json:"publication_year"`
	Pages           RawField `json:"pages"`
	Description     RawField `json:"description"`
	Categories      RawField `json:"categories"`
}

// CoverUpload describes an uploaded cover image file before it is stored.
type CoverUpload struct {
	// Filename is the client-supplied name, not yet sanitized.
	Filename string

	// ContentType is taken from the multipart part header.
	ContentType string

	Size int64

	// Content streams the file body.
	Content io.Reader
}
