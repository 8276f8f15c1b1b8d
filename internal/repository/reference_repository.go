package repository

import (
	"TrailGuide/internal/models"
	"context"

	"gorm.io/gorm"
)

type SectionRepository interface {
	GenericRepository[models.Section]
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return NewGenericRepository[models.Section](db, "section", "rank, title")
}

type CategoryRepository interface {
	GenericRepository[models.Category]
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return NewGenericRepository[models.Category](db, "category", "id")
}

type LayerRepository interface {
	GenericRepository[models.Layer]
	FindEnabled(ctx context.Context) ([]models.Layer, error)
}

type LayerRepositoryImpl struct {
	GenericRepository[models.Layer]
	db *gorm.DB
}

func NewLayerRepository(db *gorm.DB) LayerRepository {
	return &LayerRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Layer](db, "layer", "rank, name"),
		db:                db,
	}
}

func (r *LayerRepositoryImpl) FindEnabled(ctx context.Context) ([]models.Layer, error) {
	var layers []models.Layer
	if err := r.db.WithContext(ctx).Where("enabled = ?", true).Order("rank, name").Find(&layers).Error; err != nil {
		return nil, storageError("list layers", err)
	}
	return layers, nil
}

type FeedbackRepository interface {
	GenericRepository[models.Feedback]
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return NewGenericRepository[models.Feedback](db, "feedback", "submitted")
}
