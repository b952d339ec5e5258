// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the accounts API.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, CORS and bearer authentication are handled here before
// requests are delegated to the service layer. Every failure is translated to
// a status code and a JSON {"detail": ...} body in errors_mapper.go.
package http
