// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrValidationFailure is the root of every rejection produced by this package.
	ErrValidationFailure = errors.New("validation failure")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrNullField       = errors.New("field cannot be null")
	ErrInvalidRole     = errors.New("invalid role")
)
