// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a presence-aware JSON field.
//
// It distinguishes three request states that a plain pointer cannot:
//   - absent from the payload: Set == false;
//   - present with a value:    Set == true, Null == false;
//   - present as JSON null:    Set == true, Null == true ("explicitly cleared").
//
// The zero value is "absent". Fields of this type must not use omitempty on
// the encoding side: encoding an absent Optional produces null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns a present Optional that explicitly clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// HasValue reports whether the field was supplied with a non-null value.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// IsCleared reports whether the field was supplied as an explicit null.
func (o Optional[T]) IsCleared() bool {
	return o.Set && o.Null
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what makes Set meaningful.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}

	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON writes the value, or null when the field is absent or cleared.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
