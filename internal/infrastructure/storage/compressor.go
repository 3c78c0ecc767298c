package storage

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// Uploads may arrive as webp; stdlib only registers jpeg/png/gif.
	_ "golang.org/x/image/webp"

	"github.com/pixvault/pixvault-backend/internal/domain"
)

const minJPEGQuality = 10

type CompressorImpl struct {
	maxPasses int
}

func NewCompressor(maxPasses int) *CompressorImpl {
	return &CompressorImpl{maxPasses: maxPasses}
}

// Compress resizes the source to the requested dimensions and re-encodes
// it as JPEG until the result fits maxBytes. Input already within budget
// is returned untouched. Quality steps down on repeated misses; the pass
// count is capped so pathological input fails instead of looping.
func (c *CompressorImpl) Compress(data []byte, maxBytes, quality, width, height int) ([]byte, error) {
	if len(data) <= maxBytes {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	for pass := 0; pass < c.maxPasses; pass++ {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, fmt.Errorf("encoding jpeg: %w", err)
		}

		if buf.Len() <= maxBytes {
			return buf.Bytes(), nil
		}

		quality -= 10
		if quality < minJPEGQuality {
			quality = minJPEGQuality
		}
	}

	return nil, domain.ErrCompressionBudget
}
