// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the catalog.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, rate limiting, CORS and response compression are handled in this
// package before requests are delegated to the service layer. Every error
// response carries a {"error": "<message>"} JSON body.
package http
