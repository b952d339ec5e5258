// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account request payloads before they reach the
// service layer.
//
// A Validator accepts models.AccountCreate, models.AccountLogin and
// models.AccountUpdate. Failures wrap ErrValidationFailure and carry one
// human readable message per offending field, named by its JSON key.
package validators

import "context"

// Validator validates a request payload. The optional field names restrict
// validation of partial payloads to those JSON keys.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
