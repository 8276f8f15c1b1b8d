package repository

import (
	"TrailGuide/internal/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AssetRepository interface {
	GenericRepository[models.Asset]
	FindFiltered(ctx context.Context, enabledOnly bool) ([]models.Asset, error)
	FindByChecksum(ctx context.Context, sha1 string) ([]models.Asset, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Asset, error)
	FindTypes(ctx context.Context) ([]models.AssetType, error)
	TypeExists(ctx context.Context, assetType string) (bool, error)
}

type AssetRepositoryImpl struct {
	GenericRepository[models.Asset]
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &AssetRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Asset](db, "asset", "created_at, id"),
		db:                db,
	}
}

// FindFiltered lists assets that are not deleted.
func (r *AssetRepositoryImpl) FindFiltered(ctx context.Context, enabledOnly bool) ([]models.Asset, error) {
	var assets []models.Asset
	q := r.db.WithContext(ctx).Where("deleted = ?", false)
	if enabledOnly {
		q = q.Where("enabled = ?", true)
	}
	if err := q.Order("created_at, id").Find(&assets).Error; err != nil {
		return nil, storageError("list assets", err)
	}
	return assets, nil
}

func (r *AssetRepositoryImpl) FindByChecksum(ctx context.Context, sha1 string) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.WithContext(ctx).Where("sha1_checksum = ? AND deleted = ?", sha1, false).Find(&assets).Error
	if err != nil {
		return nil, storageError("find assets by checksum", err)
	}
	return assets, nil
}

func (r *AssetRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]models.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var assets []models.Asset
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&assets).Error; err != nil {
		return nil, storageError("find assets", err)
	}
	return assets, nil
}

func (r *AssetRepositoryImpl) FindTypes(ctx context.Context) ([]models.AssetType, error) {
	var types []models.AssetType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, storageError("list asset types", err)
	}
	return types, nil
}

func (r *AssetRepositoryImpl) TypeExists(ctx context.Context, assetType string) (bool, error) {
	var t models.AssetType
	err := r.db.WithContext(ctx).Where("id = ?", assetType).Take(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, storageError("find asset type", err)
	}
	return true, nil
}
