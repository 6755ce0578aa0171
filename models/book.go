// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultCategoryPriority is assigned to a book category link when the
// request does not specify one.
const DefaultCategoryPriority = 1

// Book is a catalog entry belonging to exactly one [Author].
//
// AuthorName and every BookCategory.CategoryName are denormalized at read
// time by the store; Categories is never nil for a book read from the store.
type Book struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	ISBN            *string        `json:"isbn"`
	PublicationYear *int           `json:"publication_year"`
	Pages           *int           `json:"pages"`
	Description     *string        `json:"description"`
	CoverImage      *string        `json:"cover_image"`
	AuthorID        int64          `json:"author_id"`
	AuthorName      *string        `json:"author_name"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Categories      []BookCategory `json:"categories"`
}

// BookCategory is the association entity linking a [Book] to a [Category].
// The (BookID, CategoryID) pair is unique.
type BookCategory struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book_id"`
	CategoryID   int64     `json:"category_id"`
	CategoryName *string   `json:"category_name"`
	Priority     int       `json:"priority"`
	Notes        *string   `json:"notes"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// BookCategoryInput holds a validated category link for a book write.
type BookCategoryInput struct {
	CategoryID int64
	Priority   int
	Notes      *string
}

// BookInput holds validated values for creating a [Book].
type BookInput struct {
	Title           string
	AuthorID        int64
	ISBN            *string
	PublicationYear *int
	Pages           *int
	Description     *string
	CoverImage      *string
	Categories      []BookCategoryInput
}

// Patch is a single field of a partial update. Set reports whether the field
// was present in the request; a present field with a nil Value clears the
// column.
type Patch[T any] struct {
	Set   bool
	Value *T
}

// NewPatch returns a present [Patch] holding v.
func NewPatch[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: &v}
}

// ClearPatch returns a present [Patch] that clears the column.
func ClearPatch[T any]() Patch[T] {
	return Patch[T]{Set: true}
}

// BookPatch holds validated values for a partial update of a [Book].
//
// Title and AuthorID cannot be cleared, so they are plain pointers: nil means
// "not provided". When SetCategories is true the book's links are replaced by
// Categories, which may be empty.
type BookPatch struct {
	Title           *string
	AuthorID        *int64
	ISBN            Patch[string]
	PublicationYear Patch[int]
	Pages           Patch[int]
	Description     Patch[string]

	SetCategories bool
	Categories    []BookCategoryInput
}

// IsEmpty reports whether the patch changes no column and no link.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.AuthorID == nil &&
		!p.ISBN.Set &&
		!p.PublicationYear.Set &&
		!p.Pages.Set &&
		!p.Description.Set &&
		!p.SetCategories
}
