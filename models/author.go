// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Author is a writer owning zero or more books.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	BirthYear *int      `json:"birth_year"`
	CreatedAt time.Time `json:"created_at"`

	// BookCount is resolved with an aggregate join at read time.
	BookCount int `json:"book_count"`
}

// AuthorInput holds validated values for creating an [Author].
type AuthorInput struct {
	Name      string
	Email     *string
	BirthYear *int
}
