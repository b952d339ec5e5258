// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - lowercase hex-encoded HMAC-SHA256 digest
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), []byte(hashKey)))
}

// EqualHash compares two hex signatures in constant time.
func EqualHash(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
// A new HMAC instance is created on each call.
func hashString(data []byte, hashKey []byte) []byte {
	hasher := hmac.New(sha256.New, hashKey)
	hasher.Write(data)
	return hasher.Sum(nil)
}
