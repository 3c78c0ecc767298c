package deletion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pixvault/pixvault-backend/internal/adapter/repository"
	"github.com/pixvault/pixvault-backend/internal/adapter/storage"
)

type Service struct {
	imageRepo repository.ImageRepository
	blobs     storage.BlobStorage
	logger    *zap.Logger
}

func NewService(imageRepo repository.ImageRepository, blobs storage.BlobStorage, logger *zap.Logger) *Service {
	return &Service{
		imageRepo: imageRepo,
		blobs:     blobs,
		logger:    logger,
	}
}

// DeleteByKeys removes all records sharing the key pair after verifying
// the requester owns one of them. Deleting one owner's record removes
// every duplicate link to the same pair, including other owners'. Blobs
// are only physically deleted when the requester's record produced them
// and was the sole remaining reference; the reference count comes from
// the purge transaction itself, so a concurrent duplicate link either
// lands before the purge (and raises the count) or finds no record to
// link to afterward.
func (s *Service) DeleteByKeys(ctx context.Context, owner uuid.UUID, keyLow, keyHigh string) error {
	record, err := s.imageRepo.FindByOwnerAndKeys(ctx, owner, keyLow, keyHigh)
	if err != nil {
		return err
	}

	removed, err := s.imageRepo.PurgeByKeys(ctx, keyLow, keyHigh)
	if err != nil {
		return fmt.Errorf("purging image records: %w", err)
	}

	if !record.IsDuplicate && removed == 1 {
		if err := s.blobs.Delete(ctx, keyLow); err != nil {
			return fmt.Errorf("deleting low variant blob: %w", err)
		}
		if err := s.blobs.Delete(ctx, keyHigh); err != nil {
			return fmt.Errorf("deleting high variant blob: %w", err)
		}
	}

	s.logger.Info("image deleted",
		zap.String("key_low", keyLow),
		zap.String("key_high", keyHigh),
		zap.String("owner_uid", owner.String()),
		zap.Int("records_removed", removed),
		zap.Bool("blobs_deleted", !record.IsDuplicate && removed == 1),
	)

	return nil
}
