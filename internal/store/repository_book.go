// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
)

// bookRepository is the SQL-backed implementation of [BookRepository].
//
// Books are always read back with their author name and category links
// resolved by joins, so every method returning a [models.Book] returns the
// same denormalized shape.
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by db.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBook inserts the book and all of its category links in one
// transaction.
//
// Error handling:
//   - unknown author → [ErrAuthorNotFound]; no row is written.
//   - unknown category → [ErrCategoryNotFound]; the transaction is rolled back.
//   - the same category twice → [ErrDuplicateBookCategory].
func (r *bookRepository) CreateBook(ctx context.Context, input models.BookInput) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := authorExists(ctx, r.builder, tx, input.AuthorID); err != nil {
			return err
		}
		if err := r.checkCategories(ctx, tx, input.Categories); err != nil {
			return err
		}

		now := r.timestamp()
		query, args, err := buildInsertBookQuery(r.builder, input, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var bookID int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&bookID); err != nil {
			if r.classify(err) == ClassForeignKeyViolation {
				return ErrAuthorNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if err = r.insertLinks(ctx, tx, bookID, input.Categories); err != nil {
			return err
		}

		book, err = r.getBook(ctx, tx, bookID)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.CreateBook").
			Int64("author_id", input.AuthorID).
			Msg("failed to create book")
		return models.Book{}, err
	}

	return book, nil
}

// ListBooks returns every book ordered by id.
func (r *bookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books, err := r.getBooks(ctx, r.DB)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to list books")
		return nil, err
	}

	return books, nil
}

// GetBook returns the book with the given id or [ErrBookNotFound].
func (r *bookRepository) GetBook(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	book, err := r.getBook(ctx, r.DB, bookID)
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		log.Err(err).
			Str("func", "*bookRepository.GetBook").
			Int64("book_id", bookID).
			Msg("failed to get book")
	}

	return book, err
}

// UpdateBook applies the present fields of patch and refreshes updated_at.
// When patch.SetCategories is true the book's links are replaced by
// patch.Categories (possibly none) in the same transaction.
func (r *bookRepository) UpdateBook(ctx context.Context, bookID int64, patch models.BookPatch) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.selectCover(ctx, tx, bookID); err != nil {
			return err
		}
		if patch.AuthorID != nil {
			if err := authorExists(ctx, r.builder, tx, *patch.AuthorID); err != nil {
				return err
			}
		}
		if patch.SetCategories {
			if err := r.checkCategories(ctx, tx, patch.Categories); err != nil {
				return err
			}
		}

		err := execStatement(ctx, tx, func() (string, []any, error) {
			return buildUpdateBookQuery(r.builder, bookID, patch, r.timestamp())
		})
		if err != nil {
			if r.classify(err) == ClassForeignKeyViolation {
				return ErrAuthorNotFound
			}
			return err
		}

		if patch.SetCategories {
			err = execStatement(ctx, tx, func() (string, []any, error) {
				return buildDeleteBookCategoriesQuery(r.builder, bookID)
			})
			if err != nil {
				return err
			}
			if err = r.insertLinks(ctx, tx, bookID, patch.Categories); err != nil {
				return err
			}
		}

		book, err = r.getBook(ctx, tx, bookID)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.UpdateBook").
			Int64("book_id", bookID).
			Msg("failed to update book")
		return models.Book{}, err
	}

	return book, nil
}

// DeleteBook removes the book's category links and then the book in one
// transaction. It returns the removed book's cover image name, if any.
func (r *bookRepository) DeleteBook(ctx context.Context, bookID int64) (*string, error) {
	log := logger.FromContext(ctx)

	var cover *string
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if cover, err = r.selectCover(ctx, tx, bookID); err != nil {
			return err
		}

		err = execStatement(ctx, tx, func() (string, []any, error) {
			return buildDeleteBookCategoriesQuery(r.builder, bookID)
		})
		if err != nil {
			return err
		}

		return execStatement(ctx, tx, func() (string, []any, error) {
			return buildDeleteBookQuery(r.builder, bookID)
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.DeleteBook").
			Int64("book_id", bookID).
			Msg("failed to delete book")
		return nil, err
	}

	return cover, nil
}

// ---- Helpers ----

// selectCover returns the cover image of the book, doubling as an existence
// check: [ErrBookNotFound] is returned when the book is missing.
func (r *bookRepository) selectCover(ctx context.Context, q queryRunner, bookID int64) (*string, error) {
	query, args, err := buildSelectBookCoverQuery(r.builder, bookID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cover *string
	err = q.QueryRowContext(ctx, query, args...).Scan(&cover)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cover, nil
}

// checkCategories rejects repeated category ids and ids with no matching
// category row.
func (r *bookRepository) checkCategories(ctx context.Context, q queryRunner, links []models.BookCategoryInput) error {
	if len(links) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(links))
	seen := make(map[int64]struct{}, len(links))
	for _, link := range links {
		if _, ok := seen[link.CategoryID]; ok {
			return fmt.Errorf("%w: category %d", ErrDuplicateBookCategory, link.CategoryID)
		}
		seen[link.CategoryID] = struct{}{}
		ids = append(ids, link.CategoryID)
	}

	query, args, err := buildSelectCategoryIDsQuery(r.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		delete(seen, id)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for _, id := range ids {
		if _, missing := seen[id]; missing {
			return fmt.Errorf("%w: category %d", ErrCategoryNotFound, id)
		}
	}

	return nil
}

func (r *bookRepository) insertLinks(ctx context.Context, q queryRunner, bookID int64, links []models.BookCategoryInput) error {
	if len(links) == 0 {
		return nil
	}

	err := execStatement(ctx, q, func() (string, []any, error) {
		return buildInsertBookCategoriesQuery(r.builder, bookID, links, r.timestamp())
	})
	if err != nil {
		switch r.classify(err) {
		case ClassUniqueViolation:
			return ErrDuplicateBookCategory
		case ClassForeignKeyViolation:
			return ErrCategoryNotFound
		}
		return err
	}

	return nil
}

func (r *bookRepository) getBook(ctx context.Context, q queryRunner, bookID int64) (models.Book, error) {
	books, err := r.getBooks(ctx, q, bookID)
	if err != nil {
		return models.Book{}, err
	}
	if len(books) == 0 {
		return models.Book{}, ErrBookNotFound
	}

	return books[0], nil
}

// getBooks reads the given books, or every book when bookIDs is empty,
// and attaches their category links. Categories is never nil.
func (r *bookRepository) getBooks(ctx context.Context, q queryRunner, bookIDs ...int64) ([]models.Book, error) {
	query, args, err := buildSelectBooksQuery(r.builder, bookIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 16)
	index := make(map[int64]int)
	for rows.Next() {
		var book models.Book
		scanErr := rows.Scan(
			&book.ID,
			&book.Title,
			&book.ISBN,
			&book.PublicationYear,
			&book.Pages,
			&book.Description,
			&book.CoverImage,
			&book.AuthorID,
			&book.AuthorName,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		book.Categories = make([]models.BookCategory, 0)
		index[book.ID] = len(books)
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(books) == 0 {
		return books, nil
	}

	links, err := r.getLinks(ctx, q, bookIDs...)
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		if i, ok := index[link.BookID]; ok {
			books[i].Categories = append(books[i].Categories, link)
		}
	}

	return books, nil
}

func (r *bookRepository) getLinks(ctx context.Context, q queryRunner, bookIDs ...int64) ([]models.BookCategory, error) {
	query, args, err := buildSelectBookCategoriesQuery(r.builder, bookIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var links []models.BookCategory
	for rows.Next() {
		var link models.BookCategory
		scanErr := rows.Scan(
			&link.ID,
			&link.BookID,
			&link.CategoryID,
			&link.CategoryName,
			&link.Priority,
			&link.Notes,
			&link.AssignedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		links = append(links, link)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return links, nil
}
