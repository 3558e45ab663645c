package imaging

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the lowercase hex SHA-256 digest of data. It is
// computed over the raw submission bytes before any decoding, so
// byte-identical submissions always map to the same storage keys.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
