package services

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"iter"

	"github.com/sirupsen/logrus"
)

// RevisionedSource lists the current revision of every entity of one type.
type RevisionedSource interface {
	AllCurrent(ctx context.Context) ([]models.Revisioned, error)
}

type UsageService interface {
	// Recompute replaces the usage rows of one revision with the asset
	// references found in its content.
	Recompute(ctx context.Context, content models.Revisioned) error
	IsReachable(ctx context.Context, assetID string) (bool, error)
	// UnreachableAssets streams the IDs of non-deleted assets that no current
	// revision uses. The database cursor stays open while iterating, so the
	// loop body must not issue queries of its own.
	UnreachableAssets(ctx context.Context) iter.Seq2[string, error]
	UsageCounts(ctx context.Context) (map[string]models.UsageCount, error)
	RebuildAll(ctx context.Context, sources ...RevisionedSource) (int, error)
}

type usageServiceImpl struct {
	usageRepo  repository.UsageRepository
	logService LogService
}

func NewUsageService(usageRepo repository.UsageRepository, logService LogService) UsageService {
	return &usageServiceImpl{usageRepo: usageRepo, logService: logService}
}

func (s *usageServiceImpl) Recompute(ctx context.Context, content models.Revisioned) error {
	return s.usageRepo.Replace(ctx, content.TableName(), content.EntityID(), content.RevisionMeta().Number, content.AssetRefs())
}

func (s *usageServiceImpl) IsReachable(ctx context.Context, assetID string) (bool, error) {
	return s.usageRepo.IsReachable(ctx, assetID)
}

func (s *usageServiceImpl) UnreachableAssets(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		rows, err := s.usageRepo.UnreachableRows(ctx)
		if err != nil {
			yield("", err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				yield("", &models.StorageError{Op: "scan unreachable assets", Err: err})
				return
			}
			if !yield(id, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield("", &models.StorageError{Op: "unreachable assets", Err: err})
		}
	}
}

func (s *usageServiceImpl) UsageCounts(ctx context.Context) (map[string]models.UsageCount, error) {
	return s.usageRepo.CurrentCounts(ctx)
}

func (s *usageServiceImpl) RebuildAll(ctx context.Context, sources ...RevisionedSource) (int, error) {
	var rebuilt int
	for _, source := range sources {
		current, err := source.AllCurrent(ctx)
		if err != nil {
			return rebuilt, err
		}
		for _, content := range current {
			if err := s.Recompute(ctx, content); err != nil {
				return rebuilt, err
			}
			rebuilt++
		}
	}
	s.logService.Log.WithFields(logrus.Fields{
		"job":    "usage",
		"status": "rebuilt",
		"count":  rebuilt,
	}).Info("Asset usage rebuilt")
	return rebuilt, nil
}
