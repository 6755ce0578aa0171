// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers when reading a request before it
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidPathID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("path id is not a positive integer")

	// ErrInvalidJSON is returned when a JSON request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidForm is returned when a multipart body cannot be parsed.
	ErrInvalidForm = errors.New("invalid multipart form")

	// ErrPayloadTooLarge is returned when a request body exceeds the
	// configured upload limit.
	ErrPayloadTooLarge = errors.New("request body too large")
)
