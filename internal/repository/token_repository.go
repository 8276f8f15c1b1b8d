package repository

import (
	"TrailGuide/internal/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.OneTimeToken) error
	// Consume removes the token and returns it if it existed and had not expired at now.
	Consume(ctx context.Context, token string, now time.Time) (*models.OneTimeToken, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TokenRepositoryImpl struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

func (r *TokenRepositoryImpl) Create(ctx context.Context, token *models.OneTimeToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return storageError("create token", err)
	}
	return nil
}

func (r *TokenRepositoryImpl) Consume(ctx context.Context, token string, now time.Time) (*models.OneTimeToken, error) {
	var ott models.OneTimeToken
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", token).Take(&ott).Error; err != nil {
			return err
		}
		res := tx.Where("token = ?", token).Delete(&models.OneTimeToken{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, storageError("consume token", err)
	}
	if !ott.Expiry.After(now) {
		return nil, models.ErrUnauthorized
	}
	return &ott, nil
}

func (r *TokenRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expiry <= ?", now).Delete(&models.OneTimeToken{})
	if res.Error != nil {
		return 0, storageError("delete expired tokens", res.Error)
	}
	return res.RowsAffected, nil
}
