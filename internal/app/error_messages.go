// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// catalog server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies as {"error": ...} or {"message": ...}. Keeping them in
// one place ensures consistent wording throughout the API.
package app

// Success messages.
const (
	MsgUserRegistered  = "User registered successfully"
	MsgAuthorDeleted   = "Author deleted successfully"
	MsgCategoryDeleted = "Category deleted successfully"
	MsgBookDeleted     = "Book deleted successfully"
)

// Error messages.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidForm is returned when a multipart body cannot be parsed.
	MsgInvalidForm = "Invalid form data"

	// MsgPayloadTooLarge is returned when a book creation body exceeds the
	// upload limit.
	MsgPayloadTooLarge = "Request body too large"

	// MsgInvalidDataProvided is the fallback for validation failures that
	// carry no field detail.
	MsgInvalidDataProvided = "Invalid data provided"

	MsgCredentialsRequired     = "Username and password are required"
	MsgUsernameTaken           = "Username already taken"
	MsgInvalidCredentials      = "Invalid credentials"
	MsgTitleAndAuthorRequired  = "Title and Author are required"
	MsgInvalidCategoriesFormat = "Invalid categories format"
	MsgInvalidImageFormat      = "Invalid image format"
	MsgAuthorNotFound          = "Author not found"
	MsgCategoryNotFound        = "Category not found"
	MsgBookNotFound            = "Book not found"
	MsgCoverImageNotFound      = "Cover image not found"
	MsgAuthorEmailTaken        = "Author email already exists"
	MsgCategoryNameTaken       = "Category name already exists"
	MsgDuplicateBookCategory   = "Category is assigned to the book more than once"
	MsgMissingAuthorization    = "Missing Authorization Header"
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid"
	MsgTooManyRequests         = "Too many requests"
	MsgNotFound                = "Not found"
	MsgInternalServerError     = "Internal server error"
)
