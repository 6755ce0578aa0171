// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
)

// pngBytes is a PNG signature followed by an IHDR chunk header, enough for
// content sniffing.
var pngBytes = []byte{
	0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n',
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00,
}

func newTestLocalStorage(t *testing.T) (CoverImageStorage, string) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalCoverImageStorage(dir, logger.NewLogger("test"))
	require.NoError(t, err)
	return s, dir
}

func TestNewLocalCoverImageStorage_CreatesDirectory(t *testing.T) {
	_, dir := newTestLocalStorage(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalCoverImageStorage_SaveOpenDelete(t *testing.T) {
	s, dir := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCoverImage(ctx, "abc_cover.png", bytes.NewReader(pngBytes), "image/png"))
	assert.FileExists(t, filepath.Join(dir, "abc_cover.png"))

	rc, contentType, err := s.OpenCoverImage(ctx, "abc_cover.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, pngBytes, data)
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, s.DeleteCoverImage(ctx, "abc_cover.png"))
	assert.NoFileExists(t, filepath.Join(dir, "abc_cover.png"))
}

func TestLocalCoverImageStorage_NoOverwrite(t *testing.T) {
	s, _ := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCoverImage(ctx, "x.png", bytes.NewReader(pngBytes), ""))
	require.Error(t, s.SaveCoverImage(ctx, "x.png", bytes.NewReader([]byte("other")), ""))
}

func TestLocalCoverImageStorage_Missing(t *testing.T) {
	s, _ := newTestLocalStorage(t)
	ctx := context.Background()

	_, _, err := s.OpenCoverImage(ctx, "nope.png")
	require.ErrorIs(t, err, ErrCoverImageNotFound)

	// deleting a missing image is not an error
	require.NoError(t, s.DeleteCoverImage(ctx, "nope.png"))
}

func TestLocalCoverImageStorage_InvalidNames(t *testing.T) {
	s, _ := newTestLocalStorage(t)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../etc/passwd", "sub/dir.png"} {
		t.Run(name, func(t *testing.T) {
			err := s.SaveCoverImage(ctx, name, bytes.NewReader(pngBytes), "")
			require.ErrorIs(t, err, ErrInvalidCoverImageName)

			_, _, err = s.OpenCoverImage(ctx, name)
			require.ErrorIs(t, err, ErrInvalidCoverImageName)

			require.ErrorIs(t, s.DeleteCoverImage(ctx, name), ErrInvalidCoverImageName)
		})
	}
}
