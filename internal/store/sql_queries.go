// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-catalog/models"
)

// Every builder below takes the driver's statement builder so that the same
// query is rendered with $N placeholders for PostgreSQL and ? for SQLite.

var (
	bookColumns = []string{
		"b.id",
		"b.title",
		"b.isbn",
		"b.publication_year",
		"b.pages",
		"b.description",
		"b.cover_image",
		"b.author_id",
		"a.name",
		"b.created_at",
		"b.updated_at",
	}

	bookCategoryColumns = []string{
		"bc.id",
		"bc.book_id",
		"bc.category_id",
		"c.name",
		"bc.priority",
		"bc.notes",
		"bc.assigned_at",
	}
)

// ── users ──

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert("users").
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("id", "username", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

// ── authors ──

func buildInsertAuthorQuery(b sq.StatementBuilderType, input models.AuthorInput, now time.Time) (string, []any, error) {
	return b.Insert("authors").
		Columns("name", "email", "birth_year", "created_at").
		Values(input.Name, input.Email, input.BirthYear, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectAuthorsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("a.id", "a.name", "a.email", "a.birth_year", "a.created_at", "COUNT(b.id)").
		From("authors a").
		LeftJoin("books b ON b.author_id = a.id").
		GroupBy("a.id", "a.name", "a.email", "a.birth_year", "a.created_at").
		OrderBy("a.id").
		ToSql()
}

func buildSelectAuthorIDQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	return b.Select("id").
		From("authors").
		Where(sq.Eq{"id": authorID}).
		ToSql()
}

func buildSelectAuthorCoversQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	return b.Select("cover_image").
		From("books").
		Where(sq.Eq{"author_id": authorID}).
		Where(sq.NotEq{"cover_image": nil}).
		OrderBy("id").
		ToSql()
}

func buildDeleteAuthorBookCategoriesQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	return b.Delete("book_categories").
		Where(sq.Expr("book_id IN (SELECT id FROM books WHERE author_id = ?)", authorID)).
		ToSql()
}

func buildDeleteAuthorBooksQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	return b.Delete("books").
		Where(sq.Eq{"author_id": authorID}).
		ToSql()
}

func buildDeleteAuthorQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	return b.Delete("authors").
		Where(sq.Eq{"id": authorID}).
		ToSql()
}

// ── categories ──

func buildInsertCategoryQuery(b sq.StatementBuilderType, input models.CategoryInput, now time.Time) (string, []any, error) {
	return b.Insert("categories").
		Columns("name", "description", "created_at").
		Values(input.Name, input.Description, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectCategoriesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "name", "description", "created_at").
		From("categories").
		OrderBy("id").
		ToSql()
}

func buildSelectCategoryIDsQuery(b sq.StatementBuilderType, categoryIDs []int64) (string, []any, error) {
	return b.Select("id").
		From("categories").
		Where(sq.Eq{"id": categoryIDs}).
		ToSql()
}

func buildDeleteCategoryLinksQuery(b sq.StatementBuilderType, categoryID int64) (string, []any, error) {
	return b.Delete("book_categories").
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
}

func buildDeleteCategoryQuery(b sq.StatementBuilderType, categoryID int64) (string, []any, error) {
	return b.Delete("categories").
		Where(sq.Eq{"id": categoryID}).
		ToSql()
}

// ── books ──

func buildInsertBookQuery(b sq.StatementBuilderType, input models.BookInput, now time.Time) (string, []any, error) {
	return b.Insert("books").
		Columns(
			"title",
			"isbn",
			"publication_year",
			"pages",
			"description",
			"cover_image",
			"author_id",
			"created_at",
			"updated_at",
		).
		Values(
			input.Title,
			input.ISBN,
			input.PublicationYear,
			input.Pages,
			input.Description,
			input.CoverImage,
			input.AuthorID,
			now,
			now,
		).
		Suffix("RETURNING id").
		ToSql()
}

// buildInsertBookCategoriesQuery inserts every link in one statement.
// links must not be empty.
func buildInsertBookCategoriesQuery(b sq.StatementBuilderType, bookID int64, links []models.BookCategoryInput, now time.Time) (string, []any, error) {
	if len(links) == 0 {
		return "", nil, fmt.Errorf("%w: no category links to insert", ErrBuildingSQLQuery)
	}

	query := b.Insert("book_categories").
		Columns("book_id", "category_id", "priority", "notes", "assigned_at")

	for _, link := range links {
		priority := link.Priority
		if priority == 0 {
			priority = models.DefaultCategoryPriority
		}
		query = query.Values(bookID, link.CategoryID, priority, link.Notes, now)
	}

	return query.ToSql()
}

// buildSelectBooksQuery selects every book, or only the given ones when
// bookIDs is not empty.
func buildSelectBooksQuery(b sq.StatementBuilderType, bookIDs ...int64) (string, []any, error) {
	query := b.Select(bookColumns...).
		From("books b").
		LeftJoin("authors a ON a.id = b.author_id")

	if len(bookIDs) > 0 {
		query = query.Where(sq.Eq{"b.id": bookIDs})
	}

	return query.OrderBy("b.id").ToSql()
}

// buildSelectBookCategoriesQuery selects the links of the given books, or
// every link when bookIDs is empty.
func buildSelectBookCategoriesQuery(b sq.StatementBuilderType, bookIDs ...int64) (string, []any, error) {
	query := b.Select(bookCategoryColumns...).
		From("book_categories bc").
		LeftJoin("categories c ON c.id = bc.category_id")

	if len(bookIDs) > 0 {
		query = query.Where(sq.Eq{"bc.book_id": bookIDs})
	}

	return query.OrderBy("bc.book_id", "bc.id").ToSql()
}

func buildSelectBookCoverQuery(b sq.StatementBuilderType, bookID int64) (string, []any, error) {
	return b.Select("cover_image").
		From("books").
		Where(sq.Eq{"id": bookID}).
		ToSql()
}

// buildUpdateBookQuery sets the present fields of patch and always refreshes
// updated_at, so an empty patch still produces a valid statement.
func buildUpdateBookQuery(b sq.StatementBuilderType, bookID int64, patch models.BookPatch, now time.Time) (string, []any, error) {
	values := map[string]any{
		"updated_at": now,
	}

	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.AuthorID != nil {
		values["author_id"] = *patch.AuthorID
	}
	if patch.ISBN.Set {
		values["isbn"] = patch.ISBN.Value
	}
	if patch.PublicationYear.Set {
		values["publication_year"] = patch.PublicationYear.Value
	}
	if patch.Pages.Set {
		values["pages"] = patch.Pages.Value
	}
	if patch.Description.Set {
		values["description"] = patch.Description.Value
	}

	return b.Update("books").
		SetMap(values).
		Where(sq.Eq{"id": bookID}).
		ToSql()
}

func buildDeleteBookCategoriesQuery(b sq.StatementBuilderType, bookID int64) (string, []any, error) {
	return b.Delete("book_categories").
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
}

func buildDeleteBookQuery(b sq.StatementBuilderType, bookID int64) (string, []any, error) {
	return b.Delete("books").
		Where(sq.Eq{"id": bookID}).
		ToSql()
}
