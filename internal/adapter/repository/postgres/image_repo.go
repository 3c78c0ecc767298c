package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixvault/pixvault-backend/internal/domain"
	"github.com/pixvault/pixvault-backend/internal/domain/entity"
	"github.com/pixvault/pixvault-backend/internal/domain/valueobject"
)

const (
	uniqueViolationCode = "23505"
	digestConstraint    = "images_digest_unique"
	keysConstraint      = "images_keys_unique"
)

const imageColumns = "id, owner_uid, sha256, md5, key_low, key_high, is_duplicate, created_at"

type ImageRepo struct {
	pool *pgxpool.Pool
}

func NewImageRepo(pool *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{pool: pool}
}

func (r *ImageRepo) Create(ctx context.Context, img *entity.Image) error {
	query := `
		INSERT INTO images (id, owner_uid, sha256, md5, key_low, key_high, is_duplicate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		img.ID, img.OwnerUID, img.SHA256, img.MD5,
		img.KeyLow, img.KeyHigh, img.IsDuplicate, img.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			switch pgErr.ConstraintName {
			case digestConstraint:
				return domain.ErrContentRace
			case keysConstraint:
				return domain.ErrImageAlreadyExists
			}
		}
		return fmt.Errorf("inserting image: %w", err)
	}
	return nil
}

func (r *ImageRepo) CreateAnnotations(ctx context.Context, imageID uuid.UUID) error {
	query := `
		INSERT INTO image_annotations (id, image_id, kind, created_at)
		VALUES ($1, $2, $3, $4)
	`
	batch := &pgx.Batch{}
	for _, kind := range entity.AnnotationKinds {
		a := entity.NewAnnotation(imageID, kind)
		batch.Queue(query, a.ID, a.ImageID, a.Kind, a.CreatedAt)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting annotations: %w", err)
	}
	return nil
}

func (r *ImageRepo) FindByDigest(ctx context.Context, sha256, md5 string) (*entity.Image, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM images
		WHERE sha256 = $1 AND md5 = $2
		ORDER BY created_at ASC
		LIMIT 1
	`, imageColumns)
	return r.queryOne(ctx, query, sha256, md5)
}

func (r *ImageRepo) FindByKeys(ctx context.Context, keyLow, keyHigh string) (*entity.Image, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM images
		WHERE key_low = $1 AND key_high = $2
		ORDER BY created_at ASC
		LIMIT 1
	`, imageColumns)
	return r.queryOne(ctx, query, keyLow, keyHigh)
}

func (r *ImageRepo) FindByOwnerAndKeys(ctx context.Context, owner uuid.UUID, keyLow, keyHigh string) (*entity.Image, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM images
		WHERE owner_uid = $1 AND key_low = $2 AND key_high = $3
		ORDER BY created_at ASC
		LIMIT 1
	`, imageColumns)
	return r.queryOne(ctx, query, owner, keyLow, keyHigh)
}

func (r *ImageRepo) FindByVariantKey(ctx context.Context, key string, quality valueobject.Quality) (*entity.Image, error) {
	column := "key_high"
	if quality == valueobject.QualityLow {
		column = "key_low"
	}
	query := fmt.Sprintf(`
		SELECT %s FROM images
		WHERE %s = $1
		ORDER BY created_at ASC
		LIMIT 1
	`, imageColumns, column)
	return r.queryOne(ctx, query, key)
}

func (r *ImageRepo) ListAll(ctx context.Context) ([]entity.Image, error) {
	query := fmt.Sprintf(`SELECT %s FROM images ORDER BY created_at ASC`, imageColumns)
	return r.queryMany(ctx, query)
}

func (r *ImageRepo) ListByOwner(ctx context.Context, owner uuid.UUID, order valueobject.SortOrder) ([]entity.Image, error) {
	direction := "DESC"
	if order == valueobject.SortAsc {
		direction = "ASC"
	}
	query := fmt.Sprintf(`
		SELECT %s FROM images
		WHERE owner_uid = $1
		ORDER BY created_at %s
	`, imageColumns, direction)
	return r.queryMany(ctx, query, owner)
}

func (r *ImageRepo) CountByKeys(ctx context.Context, keyLow, keyHigh string) (int, error) {
	query := `SELECT COUNT(*) FROM images WHERE key_low = $1 AND key_high = $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, keyLow, keyHigh).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting images by keys: %w", err)
	}
	return count, nil
}

func (r *ImageRepo) PurgeByKeys(ctx context.Context, keyLow, keyHigh string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning purge transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	annotationQuery := `
		DELETE FROM image_annotations
		WHERE image_id IN (SELECT id FROM images WHERE key_low = $1 AND key_high = $2)
	`
	if _, err := tx.Exec(ctx, annotationQuery, keyLow, keyHigh); err != nil {
		return 0, fmt.Errorf("deleting annotations: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM images WHERE key_low = $1 AND key_high = $2`, keyLow, keyHigh)
	if err != nil {
		return 0, fmt.Errorf("deleting images: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing purge transaction: %w", err)
	}

	return int(result.RowsAffected()), nil
}

func (r *ImageRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.Image, error) {
	var img entity.Image
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&img.ID, &img.OwnerUID, &img.SHA256, &img.MD5,
		&img.KeyLow, &img.KeyHigh, &img.IsDuplicate, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("querying image: %w", err)
	}
	return &img, nil
}

func (r *ImageRepo) queryMany(ctx context.Context, query string, args ...any) ([]entity.Image, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []entity.Image
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(
			&img.ID, &img.OwnerUID, &img.SHA256, &img.MD5,
			&img.KeyLow, &img.KeyHigh, &img.IsDuplicate, &img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}
