package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// cacheKeyVersion is bumped whenever the resolution payload shape changes, so
// old cache rows are abandoned rather than misread.
const cacheKeyVersion = "v1"

// NormalizeInput collapses runs of whitespace and trims the input so that
// "C maj7" and " C  maj7 " share a cache entry. Case is preserved: "Cm" and
// "CM" are different chords.
func NormalizeInput(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CacheKey derives the cache lookup key for a resolution. The model is part
// of the key: answers from different models never collide.
func CacheKey(kind, model, input string) string {
	payload := cacheKeyVersion + "|" + kind + "|" + model + "|" + NormalizeInput(input)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
