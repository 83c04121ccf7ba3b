package clipling

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey builds a cache key from a text hash and the target language.
// Translations are model-agnostic for caching purposes: switching models
// rarely justifies re-translating short clipboard snippets.
func CacheKey(hash string, target Language) string {
	return hash + ":" + target.Code()
}
