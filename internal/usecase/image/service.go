package image

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pixvault/pixvault-backend/internal/adapter/repository"
	"github.com/pixvault/pixvault-backend/internal/adapter/storage"
	"github.com/pixvault/pixvault-backend/internal/domain"
	"github.com/pixvault/pixvault-backend/internal/domain/entity"
	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/config"
	"github.com/pixvault/pixvault-backend/internal/pkg/digest"
)

const variantContentType = "image/jpeg"

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".heic": {},
	".webp": {},
}

type Service struct {
	imageRepo  repository.ImageRepository
	blobs      storage.BlobStorage
	compressor storage.VariantCompressor
	cfg        config.ImageConfig
	logger     *zap.Logger
}

func NewService(
	imageRepo repository.ImageRepository,
	blobs storage.BlobStorage,
	compressor storage.VariantCompressor,
	cfg config.ImageConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		imageRepo:  imageRepo,
		blobs:      blobs,
		compressor: compressor,
		cfg:        cfg,
		logger:     logger,
	}
}

// UploadFile is one file of an upload batch. Content type and size are
// validated at the boundary before the pipeline runs.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type OutcomeStatus string

const (
	OutcomeCreated        OutcomeStatus = "created"
	OutcomeDuplicate      OutcomeStatus = "duplicate"
	OutcomeRejectedFormat OutcomeStatus = "rejected_format"
	OutcomeRejectedExists OutcomeStatus = "rejected_exists"
	OutcomeFailed         OutcomeStatus = "failed"
)

// FileOutcome is the per-file result of a batch upload. Outcomes keep
// input order; one file's failure never affects its siblings.
type FileOutcome struct {
	Filename string
	Status   OutcomeStatus
	Image    *entity.Image
	Err      error
}

// UploadBatch runs the dedup pipeline for each file in order. Files are
// processed sequentially so that a later file observes records created
// by an earlier one in the same batch. Record-store failures abort the
// whole request; compression and blob-store failures are captured as
// that file's outcome.
func (s *Service) UploadBatch(ctx context.Context, owner uuid.UUID, files []UploadFile) ([]FileOutcome, error) {
	outcomes := make([]FileOutcome, 0, len(files))

	for _, file := range files {
		outcome, err := s.processFile(ctx, owner, file)
		if err != nil {
			return nil, err
		}

		s.logger.Info("processed upload",
			zap.String("filename", file.Filename),
			zap.String("owner_uid", owner.String()),
			zap.String("status", string(outcome.Status)),
		)
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (s *Service) processFile(ctx context.Context, owner uuid.UUID, file UploadFile) (FileOutcome, error) {
	ext := strings.ToLower(path.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return FileOutcome{
			Filename: file.Filename,
			Status:   OutcomeRejectedFormat,
			Err:      domain.ErrUnsupportedFormat,
		}, nil
	}

	sha256Hex, md5Hex := digest.Digests(file.Data)
	keyLow := digest.DeriveKey(owner, file.Data, valueobject.QualityLow)
	keyHigh := digest.DeriveKey(owner, file.Data, valueobject.QualityHigh)

	// A unique-constraint violation means another request created the
	// same content between our lookup and our insert. Rerun the dedup
	// decision once against the fresh state.
	for attempt := 0; attempt < 2; attempt++ {
		outcome, err := s.resolveFile(ctx, owner, file, sha256Hex, md5Hex, keyLow, keyHigh)
		if errors.Is(err, domain.ErrContentRace) {
			continue
		}
		return outcome, err
	}

	return FileOutcome{}, fmt.Errorf("resolving upload %s: %w", file.Filename, domain.ErrContentRace)
}

func (s *Service) resolveFile(
	ctx context.Context,
	owner uuid.UUID,
	file UploadFile,
	sha256Hex, md5Hex, keyLow, keyHigh string,
) (FileOutcome, error) {
	existing, err := s.imageRepo.FindByDigest(ctx, sha256Hex, md5Hex)
	if err != nil && !errors.Is(err, domain.ErrImageNotFound) {
		return FileOutcome{}, fmt.Errorf("looking up digest pair: %w", err)
	}

	// Identical bytes already stored by any owner: link to the existing
	// blobs without compressing or uploading anything.
	if existing != nil {
		duplicate := entity.NewImage(owner, sha256Hex, md5Hex, existing.KeyLow, existing.KeyHigh, true)
		if err := s.imageRepo.Create(ctx, duplicate); err != nil {
			return FileOutcome{}, fmt.Errorf("creating duplicate record: %w", err)
		}
		return FileOutcome{Filename: file.Filename, Status: OutcomeDuplicate, Image: duplicate}, nil
	}

	// The derived key pair existing without a digest match means this
	// owner already uploaded these bytes. Surfaced as a conflict rather
	// than a silent duplicate link.
	if _, err := s.imageRepo.FindByKeys(ctx, keyLow, keyHigh); err == nil {
		return FileOutcome{
			Filename: file.Filename,
			Status:   OutcomeRejectedExists,
			Err:      domain.ErrImageAlreadyExists,
		}, nil
	} else if !errors.Is(err, domain.ErrImageNotFound) {
		return FileOutcome{}, fmt.Errorf("looking up key pair: %w", err)
	}

	high, err := s.compressor.Compress(file.Data,
		s.cfg.VariantBudgetBytes, s.cfg.HighQuality, s.cfg.HighWidth, s.cfg.HighHeight)
	if err != nil {
		return s.failed(file, fmt.Errorf("deriving high variant: %w", err)), nil
	}

	low, err := s.compressor.Compress(file.Data,
		s.cfg.VariantBudgetBytes, s.cfg.LowQuality, s.cfg.LowWidth, s.cfg.LowHeight)
	if err != nil {
		return s.failed(file, fmt.Errorf("deriving low variant: %w", err)), nil
	}

	if err := s.blobs.Upload(ctx, keyLow, low, variantContentType); err != nil {
		return s.failed(file, fmt.Errorf("uploading low variant: %w", err)), nil
	}
	if err := s.blobs.Upload(ctx, keyHigh, high, variantContentType); err != nil {
		return s.failed(file, fmt.Errorf("uploading high variant: %w", err)), nil
	}

	img := entity.NewImage(owner, sha256Hex, md5Hex, keyLow, keyHigh, false)
	if err := s.imageRepo.Create(ctx, img); err != nil {
		switch {
		case errors.Is(err, domain.ErrContentRace):
			return FileOutcome{}, err
		case errors.Is(err, domain.ErrImageAlreadyExists):
			return FileOutcome{
				Filename: file.Filename,
				Status:   OutcomeRejectedExists,
				Err:      domain.ErrImageAlreadyExists,
			}, nil
		}
		return FileOutcome{}, fmt.Errorf("creating image record: %w", err)
	}

	if err := s.imageRepo.CreateAnnotations(ctx, img.ID); err != nil {
		return FileOutcome{}, fmt.Errorf("creating annotation records: %w", err)
	}

	return FileOutcome{Filename: file.Filename, Status: OutcomeCreated, Image: img}, nil
}

func (s *Service) failed(file UploadFile, err error) FileOutcome {
	s.logger.Warn("upload failed",
		zap.String("filename", file.Filename),
		zap.Error(err),
	)
	return FileOutcome{Filename: file.Filename, Status: OutcomeFailed, Err: err}
}

// GetByVariantKey returns the record whose low or high key matches the
// queried key, per the quality selector.
func (s *Service) GetByVariantKey(ctx context.Context, key string, quality valueobject.Quality) (*entity.Image, error) {
	return s.imageRepo.FindByVariantKey(ctx, key, quality)
}

func (s *Service) ListAll(ctx context.Context) ([]entity.Image, error) {
	return s.imageRepo.ListAll(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, owner uuid.UUID, order valueobject.SortOrder) ([]entity.Image, error) {
	return s.imageRepo.ListByOwner(ctx, owner, order)
}
