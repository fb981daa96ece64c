package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns a stable hex digest of data, used as a cache key.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
