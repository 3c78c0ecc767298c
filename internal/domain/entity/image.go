package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
)

// Image is one logical ownership of a piece of content by one user.
// All fields are write-once; records are never mutated after creation.
type Image struct {
	ID          uuid.UUID
	OwnerUID    uuid.UUID
	SHA256      string
	MD5         string
	KeyLow      string
	KeyHigh     string
	IsDuplicate bool
	CreatedAt   time.Time
}

func NewImage(owner uuid.UUID, sha256, md5, keyLow, keyHigh string, isDuplicate bool) *Image {
	return &Image{
		ID:          uuid.New(),
		OwnerUID:    owner,
		SHA256:      sha256,
		MD5:         md5,
		KeyLow:      keyLow,
		KeyHigh:     keyHigh,
		IsDuplicate: isDuplicate,
		CreatedAt:   time.Now().UTC(),
	}
}

// Key returns the storage key for the requested variant.
func (i *Image) Key(q valueobject.Quality) string {
	if q == valueobject.QualityLow {
		return i.KeyLow
	}
	return i.KeyHigh
}
