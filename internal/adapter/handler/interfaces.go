package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixvault/pixvault-backend/internal/domain/entity"
	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
	"github.com/pixvault/pixvault-backend/internal/usecase/image"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ImageService interface {
	UploadBatch(ctx context.Context, owner uuid.UUID, files []image.UploadFile) ([]image.FileOutcome, error)
	GetByVariantKey(ctx context.Context, key string, quality valueobject.Quality) (*entity.Image, error)
	ListAll(ctx context.Context) ([]entity.Image, error)
	ListByOwner(ctx context.Context, owner uuid.UUID, order valueobject.SortOrder) ([]entity.Image, error)
}

type DeletionService interface {
	DeleteByKeys(ctx context.Context, owner uuid.UUID, keyLow, keyHigh string) error
}
