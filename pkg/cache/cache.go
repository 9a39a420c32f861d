// Package cache provides an optional memoization layer for affordability
// results, keyed by a hash of the normalized inputs. Caching sits outside
// the engine contract; the solver itself is cheap enough to re-run on every
// input change.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache stores serialized calculation results.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Key derives a stable cache key from any JSON-serializable value, intended
// for the normalized solver inputs plus the evaluated price.
func Key(value any) (string, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to derive cache key: %w", err)
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:]), nil
}
