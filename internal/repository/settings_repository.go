package repository

import (
	"TrailGuide/internal/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	FindAll(ctx context.Context) ([]models.Setting, error)
	Upsert(ctx context.Context, settings []models.Setting) error
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) FindAll(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.db.WithContext(ctx).Order("setting_key").Find(&settings).Error; err != nil {
		return nil, storageError("list settings", err)
	}
	return settings, nil
}

func (r *SettingsRepositoryImpl) Upsert(ctx context.Context, settings []models.Setting) error {
	if len(settings) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(&settings).Error
	if err != nil {
		return storageError("upsert settings", err)
	}
	return nil
}
