package repository

import (
	"TrailGuide/internal/models"
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type ReleaseRepository interface {
	Create(ctx context.Context, release *models.Release) error
	FindByVersion(ctx context.Context, version uint) (*models.Release, error)
	FindAll(ctx context.Context) ([]models.Release, error)
	NextVersion(ctx context.Context) (uint, error)
	// MarkPublished sets published_dt unless the release is already published.
	MarkPublished(ctx context.Context, version uint, at time.Time) (bool, error)
}

type ReleaseRepositoryImpl struct {
	db *gorm.DB
}

func NewReleaseRepository(db *gorm.DB) ReleaseRepository {
	return &ReleaseRepositoryImpl{db: db}
}

func (r *ReleaseRepositoryImpl) Create(ctx context.Context, release *models.Release) error {
	if err := r.db.WithContext(ctx).Create(release).Error; err != nil {
		return storageError("create release", err)
	}
	return nil
}

func (r *ReleaseRepositoryImpl) FindByVersion(ctx context.Context, version uint) (*models.Release, error) {
	var release models.Release
	err := r.db.WithContext(ctx).Where("version = ?", version).Take(&release).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("release", strconv.FormatUint(uint64(version), 10))
		}
		return nil, storageError("find release", err)
	}
	return &release, nil
}

func (r *ReleaseRepositoryImpl) FindAll(ctx context.Context) ([]models.Release, error) {
	var releases []models.Release
	if err := r.db.WithContext(ctx).Order("version DESC").Find(&releases).Error; err != nil {
		return nil, storageError("list releases", err)
	}
	return releases, nil
}

func (r *ReleaseRepositoryImpl) NextVersion(ctx context.Context) (uint, error) {
	var latest sql.NullInt64
	err := r.db.WithContext(ctx).Model(&models.Release{}).Select("MAX(version)").Scan(&latest).Error
	if err != nil {
		return 0, storageError("latest release", err)
	}
	if !latest.Valid {
		return 1, nil
	}
	return uint(latest.Int64) + 1, nil
}

func (r *ReleaseRepositoryImpl) MarkPublished(ctx context.Context, version uint, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Release{}).
		Where("version = ? AND published_dt IS NULL", version).
		Update("published_dt", at)
	if res.Error != nil {
		return false, storageError("publish release", res.Error)
	}
	return res.RowsAffected == 1, nil
}
