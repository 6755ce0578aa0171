// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
)

// localCoverImageStorage keeps cover images as plain files in one directory.
// Image names are flat: anything that is not a bare file name is rejected
// with [ErrInvalidCoverImageName].
type localCoverImageStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalCoverImageStorage creates dir if needed and returns a
// [CoverImageStorage] writing into it.
func NewLocalCoverImageStorage(dir string, logger *logger.Logger) (CoverImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating cover image directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local cover image storage")
	return &localCoverImageStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SaveCoverImage writes r to a new file. An existing file with the same
// name is never overwritten.
func (s *localCoverImageStorage) SaveCoverImage(ctx context.Context, name string, r io.Reader, _ string) error {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*localCoverImageStorage.SaveCoverImage").Str("name", name).Msg("error creating cover image file")
		return fmt.Errorf("error creating cover image file: %w", err)
	}

	_, err = io.Copy(file, r)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*localCoverImageStorage.SaveCoverImage").Str("name", name).Msg("error writing cover image file")
		_ = os.Remove(path)
		return fmt.Errorf("error writing cover image file: %w", err)
	}

	return nil
}

// OpenCoverImage opens the stored file and sniffs its content type.
func (s *localCoverImageStorage) OpenCoverImage(ctx context.Context, name string) (io.ReadCloser, string, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, "", err
	}

	mtype, err := mimetype.DetectFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrCoverImageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localCoverImageStorage.OpenCoverImage").Str("name", name).Msg("error detecting content type")
		return nil, "", fmt.Errorf("error reading cover image: %w", err)
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrCoverImageNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("error opening cover image: %w", err)
	}

	return file, mtype.String(), nil
}

func (s *localCoverImageStorage) DeleteCoverImage(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*localCoverImageStorage.DeleteCoverImage").Str("name", name).Msg("error removing cover image")
		return fmt.Errorf("error removing cover image: %w", err)
	}

	return nil
}

func (s *localCoverImageStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidCoverImageName, name)
	}

	return filepath.Join(s.dir, name), nil
}
