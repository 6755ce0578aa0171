// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/models"
)

// categoryRepository is the SQL-backed implementation of [CategoryRepository].
type categoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, input models.CategoryInput) (models.Category, error) {
	log := logger.FromContext(ctx)

	now := r.timestamp()
	query, args, err := buildInsertCategoryQuery(r.builder, input, now)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("failed to build query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error creating category")

		if r.classify(err) == ClassUniqueViolation {
			return models.Category{}, ErrCategoryNameAlreadyExists
		}
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCategoriesQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to execute query for listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var category models.Category
		if err = rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// DeleteCategory removes the category's book links and then the category
// itself in one transaction. [ErrCategoryNotFound] is returned when no
// category row was deleted.
func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		err := execStatement(ctx, tx, func() (string, []any, error) {
			return buildDeleteCategoryLinksQuery(r.builder, categoryID)
		})
		if err != nil {
			return err
		}

		query, args, err := buildDeleteCategoryQuery(r.builder, categoryID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrCategoryNotFound
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.DeleteCategory").
			Int64("category_id", categoryID).
			Msg("failed to delete category")
		return err
	}

	return nil
}
