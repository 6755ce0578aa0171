// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
)

// Storages groups every repository and the cover image storage so they can
// be handed to the service layer as one value.
type Storages struct {
	DB *DB

	UserRepository     UserRepository
	AuthorRepository   AuthorRepository
	CategoryRepository CategoryRepository
	BookRepository     BookRepository
	CoverImageStorage  CoverImageStorage
}

// NewStorages connects to the database, applies migrations and builds the
// repositories and the cover image storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	covers, err := NewCoverImageStorage(ctx, cfg.Files, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, covers, log), nil
}

func newStorages(db *DB, covers CoverImageStorage, log *logger.Logger) *Storages {
	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		AuthorRepository:   NewAuthorRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		BookRepository:     NewBookRepository(db, log),
		CoverImageStorage:  covers,
	}
}

// NewCoverImageStorage returns S3 storage when a bucket is configured and a
// local directory storage otherwise.
func NewCoverImageStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (CoverImageStorage, error) {
	if cfg.S3Bucket != "" {
		return NewS3CoverImageStorage(ctx, cfg, log)
	}
	return NewLocalCoverImageStorage(cfg.CoverImageDir, log)
}

// Close closes the database connection pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
