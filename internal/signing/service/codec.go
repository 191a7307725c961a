package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SignCanonical computes the HMAC-SHA256 signature of a canonical request
// string keyed by the shared secret, hex-encoded lowercase. It is a pure
// function of its inputs: the same (canonical, key) pair always yields the
// same signature.
func SignCanonical(canonical string, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// ConstantTimeEqual reports whether a and b are equal. Differing lengths
// return false immediately without inspecting content; equal-length inputs
// are compared in time independent of where the first mismatch occurs.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
