// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
)

// allowedCoverExtensions lists the accepted cover image file extensions,
// lower-cased and without the dot.
var allowedCoverExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// nameGenerator produces the unique prefix of stored cover names.
type nameGenerator interface {
	Generate() string
}

// IsAllowedCoverFilename reports whether filename carries one of the
// accepted cover image extensions.
func IsAllowedCoverFilename(filename string) bool {
	_, ok := allowedCoverExtensions[utils.FileExtension(filename)]
	return ok
}

// coverName builds the stored name of an upload: a unique prefix, an
// underscore and the sanitized client filename. When sanitizing strips the
// extension a generic "cover" base is used instead.
func coverName(names nameGenerator, filename string) string {
	ext := utils.FileExtension(filename)
	base := utils.SanitizeFilename(filename)
	if base == "" || utils.FileExtension(base) != ext {
		base = "cover." + ext
	}

	return names.Generate() + "_" + base
}

func saveCover(ctx context.Context, covers store.CoverImageStorage, names nameGenerator, upload *models.CoverUpload) (string, error) {
	if !IsAllowedCoverFilename(upload.Filename) || upload.Content == nil {
		return "", ErrInvalidImageFormat
	}

	name := coverName(names, upload.Filename)
	if err := covers.SaveCoverImage(ctx, name, upload.Content, upload.ContentType); err != nil {
		return "", fmt.Errorf("saving cover image failed: %w", err)
	}

	return name, nil
}

// removeCover deletes a stored cover. Failures are logged only: the rows
// referencing the cover are already gone.
func removeCover(ctx context.Context, covers store.CoverImageStorage, name string) {
	if err := covers.DeleteCoverImage(ctx, name); err != nil {
		logger.FromContext(ctx).Err(err).Str("cover", name).Msg("cover image removal failed")
	}
}
