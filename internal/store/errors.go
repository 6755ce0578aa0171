// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUsernameAlreadyExists is returned when registering a username that
	// is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAuthorNotFound is returned when the referenced or requested author
	// does not exist.
	ErrAuthorNotFound = errors.New("author was not found")

	// ErrAuthorEmailAlreadyExists is returned when another author already
	// uses the given email.
	ErrAuthorEmailAlreadyExists = errors.New("author email already exists")

	// ErrCategoryNotFound is returned when the referenced or requested
	// category does not exist.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategoryNameAlreadyExists is returned when a category with the same
	// name already exists.
	ErrCategoryNameAlreadyExists = errors.New("category name already exists")

	// ErrBookNotFound is returned when the requested book does not exist.
	ErrBookNotFound = errors.New("book was not found")

	// ErrDuplicateBookCategory is returned when the same category is linked
	// to a book twice.
	ErrDuplicateBookCategory = errors.New("category is already linked to the book")

	// ErrCoverImageNotFound is returned when a cover image is not present in
	// the cover storage.
	ErrCoverImageNotFound = errors.New("cover image was not found")

	// ErrInvalidCoverImageName is returned for cover names that are empty or
	// contain path elements.
	ErrInvalidCoverImageName = errors.New("invalid cover image name")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
