package response

import (
	"time"

	"github.com/pixvault/pixvault-backend/internal/domain/entity"
	"github.com/pixvault/pixvault-backend/internal/usecase/image"
)

type ImageResponse struct {
	ID          string    `json:"id"`
	OwnerUID    string    `json:"owner_uid"`
	SHA256      string    `json:"sha256"`
	MD5         string    `json:"md5"`
	KeyLow      string    `json:"key_low"`
	KeyHigh     string    `json:"key_high"`
	IsDuplicate bool      `json:"is_duplicate"`
	CreatedAt   time.Time `json:"created_at"`
}

func ImageFromEntity(img *entity.Image) ImageResponse {
	return ImageResponse{
		ID:          img.ID.String(),
		OwnerUID:    img.OwnerUID.String(),
		SHA256:      img.SHA256,
		MD5:         img.MD5,
		KeyLow:      img.KeyLow,
		KeyHigh:     img.KeyHigh,
		IsDuplicate: img.IsDuplicate,
		CreatedAt:   img.CreatedAt,
	}
}

func ImagesFromEntities(images []entity.Image) []ImageResponse {
	result := make([]ImageResponse, 0, len(images))
	for i := range images {
		result = append(result, ImageFromEntity(&images[i]))
	}
	return result
}

type UploadOutcomeResponse struct {
	Filename string         `json:"filename"`
	Status   string         `json:"status"`
	Image    *ImageResponse `json:"image,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func OutcomesToResponse(outcomes []image.FileOutcome) []UploadOutcomeResponse {
	result := make([]UploadOutcomeResponse, 0, len(outcomes))
	for _, o := range outcomes {
		resp := UploadOutcomeResponse{
			Filename: o.Filename,
			Status:   string(o.Status),
		}
		if o.Image != nil {
			img := ImageFromEntity(o.Image)
			resp.Image = &img
		}
		if o.Err != nil {
			resp.Error = o.Err.Error()
		}
		result = append(result, resp)
	}
	return result
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
