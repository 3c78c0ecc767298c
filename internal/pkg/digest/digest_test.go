package digest_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
	"github.com/pixvault/pixvault-backend/internal/pkg/digest"
)

func TestDigests(t *testing.T) {
	t.Run("is stable for identical bytes", func(t *testing.T) {
		sha1st, md51st := digest.Digests([]byte("same content"))
		sha2nd, md52nd := digest.Digests([]byte("same content"))

		assert.Equal(t, sha1st, sha2nd)
		assert.Equal(t, md51st, md52nd)
		assert.Len(t, sha1st, 64)
		assert.Len(t, md51st, 32)
	})

	t.Run("differs for different bytes", func(t *testing.T) {
		shaA, md5A := digest.Digests([]byte("content a"))
		shaB, md5B := digest.Digests([]byte("content b"))

		assert.NotEqual(t, shaA, shaB)
		assert.NotEqual(t, md5A, md5B)
	})
}

func TestDeriveKey(t *testing.T) {
	owner := uuid.New()
	data := []byte("image bytes")

	t.Run("is deterministic", func(t *testing.T) {
		first := digest.DeriveKey(owner, data, valueobject.QualityLow)
		second := digest.DeriveKey(owner, data, valueobject.QualityLow)

		assert.Equal(t, first, second)
		assert.True(t, strings.HasSuffix(first, digest.KeyExtension))
	})

	t.Run("differs per variant role", func(t *testing.T) {
		low := digest.DeriveKey(owner, data, valueobject.QualityLow)
		high := digest.DeriveKey(owner, data, valueobject.QualityHigh)

		assert.NotEqual(t, low, high)
	})

	t.Run("differs per owner for identical bytes", func(t *testing.T) {
		other := uuid.New()

		assert.NotEqual(t,
			digest.DeriveKey(owner, data, valueobject.QualityHigh),
			digest.DeriveKey(other, data, valueobject.QualityHigh),
		)
	})
}
