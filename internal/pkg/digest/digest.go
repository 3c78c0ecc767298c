// Package digest computes the content digests used for deduplication
// and derives the owner-scoped storage keys for image variants.
package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
)

// KeyExtension is appended to every derived storage key. All variants
// are re-encoded to JPEG regardless of the upload format.
const KeyExtension = ".jpeg"

// Digests returns the hex-encoded sha256 and md5 of the raw upload
// bytes. The pair is owner-agnostic and serves as the dedup key.
func Digests(data []byte) (sha256Hex, md5Hex string) {
	s := sha256.Sum256(data)
	m := md5.Sum(data)
	return hex.EncodeToString(s[:]), hex.EncodeToString(m[:])
}

// DeriveKey returns the deterministic storage key for one variant of an
// upload. The key embeds the owner identity, so byte-identical content
// uploaded by different owners derives different keys even though the
// dedup digests match.
func DeriveKey(owner uuid.UUID, data []byte, q valueobject.Quality) string {
	h := sha256.New()
	h.Write([]byte(owner.String()))
	h.Write(data)
	h.Write([]byte(q.String()))
	return hex.EncodeToString(h.Sum(nil)) + KeyExtension
}
