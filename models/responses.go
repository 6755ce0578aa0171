// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that have no entity to report,
// such as registration and deletions.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	// AccessToken is the compact signed JWT to send as a Bearer token.
	AccessToken string `json:"access_token"`

	User User `json:"user"`
}
