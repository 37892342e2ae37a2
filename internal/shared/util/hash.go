package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey derives the per-user artifact folder name from the user
// ID. The digest is stable, so repeated exports for the same user land
// under the same prefix without exposing the raw ID in object keys.
func HashUserKey(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:])
}
