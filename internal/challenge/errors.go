// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package challenge

import "errors"

var (
	ErrNotPNG     = errors.New("not a PNG file")
	ErrCorruptPNG = errors.New("corrupt PNG chunk")

	// ErrNoKey means the logo carries no ctf_key text chunk.
	ErrNoKey = errors.New("no signing key in logo metadata")
)
