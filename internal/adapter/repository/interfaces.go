package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pixvault/pixvault-backend/internal/domain/entity"
	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// ImageRepository is the relational index over image records and their
// dependent annotation rows. Partial unique indexes on the digest pair
// and the derived key pair (non-duplicate rows only) arbitrate
// concurrent creates: Create surfaces domain.ErrContentRace or
// domain.ErrImageAlreadyExists when a constraint fires.
type ImageRepository interface {
	Create(ctx context.Context, img *entity.Image) error
	CreateAnnotations(ctx context.Context, imageID uuid.UUID) error
	FindByDigest(ctx context.Context, sha256, md5 string) (*entity.Image, error)
	FindByKeys(ctx context.Context, keyLow, keyHigh string) (*entity.Image, error)
	FindByOwnerAndKeys(ctx context.Context, owner uuid.UUID, keyLow, keyHigh string) (*entity.Image, error)
	FindByVariantKey(ctx context.Context, key string, quality valueobject.Quality) (*entity.Image, error)
	ListAll(ctx context.Context) ([]entity.Image, error)
	ListByOwner(ctx context.Context, owner uuid.UUID, order valueobject.SortOrder) ([]entity.Image, error)
	CountByKeys(ctx context.Context, keyLow, keyHigh string) (int, error)

	// PurgeByKeys removes the annotation rows and every image record
	// sharing the key pair inside one transaction, and reports how many
	// image records were removed. The count is computed by the deletes
	// themselves, so it reflects the references that existed at commit
	// time.
	PurgeByKeys(ctx context.Context, keyLow, keyHigh string) (int, error)
}
