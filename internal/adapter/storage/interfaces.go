package storage

import "context"

// BlobStorage is the object-store boundary. Uploads are idempotent
// upserts: writing the same key with the same bytes is safe to repeat.
type BlobStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	GetURL(key string) string
}

// VariantCompressor re-encodes an image until it fits the byte budget.
// Quality and dimensions are fixed per call; one call derives one
// variant.
type VariantCompressor interface {
	Compress(data []byte, maxBytes, quality, width, height int) ([]byte, error)
}
