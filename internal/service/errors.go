// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrReferenceNotFound wraps a store NotFound error when the missing
	// entity was referenced by the request rather than addressed by it.
	ErrReferenceNotFound = errors.New("referenced entity was not found")

	ErrInvalidImageFormat = errors.New("invalid image format")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
