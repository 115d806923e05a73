package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashWithDomain computes a SHA-256 hash with domain separation.
// Format: SHA256(domain || 0x00 || data)
// The null byte separator prevents domain/data boundary ambiguity.
//
// Callers define their own domain strings with a version suffix
// (e.g. "pathq/pattern/v1") so the algorithm can be migrated later.
func HashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
