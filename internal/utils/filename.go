// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path/filepath"
	"strings"

	"github.com/kennygrant/sanitize"
)

// SanitizeFilename reduces an uploaded file name to a safe, flat, lower-cased
// name made of ASCII letters, digits, '-' and '.'.
//
// Both '/' and '\' count as directory separators. Spaces and common joining
// characters become '-', accents are folded, other characters are removed,
// and leading dots or dashes are trimmed so the result can never be a hidden
// file or a relative path. The result may be empty.
//
// Example:
//
//	utils.SanitizeFilename("../../My Cover (1).PNG") // "my-cover-1.png"
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimLeft(sanitize.Name(name), ".-")
}

// FileExtension returns the lower-cased extension of name without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
