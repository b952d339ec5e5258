// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("admin"))
	want := hex.EncodeToString(mac.Sum(nil))

	got := HashString("admin", testHashKey)

	if got != want {
		t.Errorf("hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
	if len(got) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(got))
	}
}

// RFC 4231 test case 2.
func TestHashString_KnownVector(t *testing.T) {
	got := HashString("what do ya want for nothing?", "Jefe")
	want := "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"

	if got != want {
		t.Errorf("hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("guest", "key-one") == HashString("guest", "key-two") {
		t.Error("different keys must produce different hashes for the same data")
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("guest", testHashKey) != HashString("guest", testHashKey) {
		t.Error("same data and key must produce the same hash")
	}
}

func TestEqualHash(t *testing.T) {
	sig := HashString("admin", testHashKey)

	if !EqualHash(sig, HashString("admin", testHashKey)) {
		t.Error("expected equal signatures to compare equal")
	}
	if EqualHash(sig, HashString("guest", testHashKey)) {
		t.Error("expected different signatures to compare unequal")
	}
	if EqualHash(sig, sig[:10]) {
		t.Error("expected truncated signature to compare unequal")
	}
}
