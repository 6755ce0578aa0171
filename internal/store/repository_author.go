// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
)

// authorRepository is the SQL-backed implementation of [AuthorRepository].
type authorRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuthorRepository constructs an [AuthorRepository] backed by db.
func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAuthor inserts a new author. A taken email is reported as
// [ErrAuthorEmailAlreadyExists]. The returned author has a BookCount of zero.
func (r *authorRepository) CreateAuthor(ctx context.Context, input models.AuthorInput) (models.Author, error) {
	log := logger.FromContext(ctx)

	now := r.timestamp()
	query, args, err := buildInsertAuthorQuery(r.builder, input, now)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("failed to build query")
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	author := models.Author{
		Name:      input.Name,
		Email:     input.Email,
		BirthYear: input.BirthYear,
		CreatedAt: now,
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&author.ID); err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("error creating author")

		if r.classify(err) == ClassUniqueViolation {
			return models.Author{}, ErrAuthorEmailAlreadyExists
		}
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return author, nil
}

// ListAuthors returns every author ordered by id, each with the number of
// books it owns.
func (r *authorRepository) ListAuthors(ctx context.Context) ([]models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuthorsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("failed to execute query for listing authors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	authors := make([]models.Author, 0, 16)
	for rows.Next() {
		var author models.Author
		if err = rows.Scan(&author.ID, &author.Name, &author.Email, &author.BirthYear, &author.CreatedAt, &author.BookCount); err != nil {
			log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("failed to scan author row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		authors = append(authors, author)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authors, nil
}

// DeleteAuthor removes the author together with its books and their
// category links in one transaction. It returns the cover image names of
// the removed books so the caller can clean them up.
func (r *authorRepository) DeleteAuthor(ctx context.Context, authorID int64) ([]string, error) {
	log := logger.FromContext(ctx).With().Int64("author_id", authorID).Logger()

	var covers []string
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := authorExists(ctx, r.builder, tx, authorID); err != nil {
			return err
		}

		var err error
		covers, err = selectAuthorCovers(ctx, r.builder, tx, authorID)
		if err != nil {
			return err
		}

		steps := []func() (string, []any, error){
			func() (string, []any, error) { return buildDeleteAuthorBookCategoriesQuery(r.builder, authorID) },
			func() (string, []any, error) { return buildDeleteAuthorBooksQuery(r.builder, authorID) },
			func() (string, []any, error) { return buildDeleteAuthorQuery(r.builder, authorID) },
		}
		for _, step := range steps {
			if err = execStatement(ctx, tx, step); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.DeleteAuthor").Msg("failed to delete author")
		return nil, err
	}

	return covers, nil
}

// authorExists reports [ErrAuthorNotFound] when there is no author with the
// given id.
func authorExists(ctx context.Context, b sq.StatementBuilderType, q queryRunner, authorID int64) error {
	query, args, err := buildSelectAuthorIDQuery(b, authorID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAuthorNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func selectAuthorCovers(ctx context.Context, b sq.StatementBuilderType, q queryRunner, authorID int64) ([]string, error) {
	query, args, err := buildSelectAuthorCoversQuery(b, authorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var covers []string
	for rows.Next() {
		var cover string
		if err = rows.Scan(&cover); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		covers = append(covers, cover)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return covers, nil
}

// execStatement builds and executes a statement that returns no rows.
func execStatement(ctx context.Context, q queryRunner, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
