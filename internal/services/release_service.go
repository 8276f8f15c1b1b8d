package services

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type ReleaseService interface {
	Submit(ctx context.Context, notes string) (*models.Release, error)
	Publish(ctx context.Context, version uint) (*models.Release, error)
	Get(ctx context.Context, version uint) (*models.Release, error)
	List(ctx context.Context) ([]models.Release, error)
	OpenBundle(ctx context.Context, version uint) (*os.File, *models.Release, error)
}

type releaseServiceImpl struct {
	releaseRepo   repository.ReleaseRepository
	bundleService BundleService
	logService    LogService
	now           func() time.Time
}

func NewReleaseService(releaseRepo repository.ReleaseRepository, bundleService BundleService, logService LogService) ReleaseService {
	return &releaseServiceImpl{
		releaseRepo:   releaseRepo,
		bundleService: bundleService,
		logService:    logService,
		now:           time.Now,
	}
}

func (s *releaseServiceImpl) Submit(ctx context.Context, notes string) (*models.Release, error) {
	version, err := s.releaseRepo.NextVersion(ctx)
	if err != nil {
		return nil, err
	}
	release := &models.Release{
		Version:      version,
		ReleaseNotes: notes,
		BundlePath:   s.bundleService.NewBundlePath(),
		SubmittedDt:  s.now().UTC(),
	}

	size, err := s.bundleService.Build(ctx, release, release.BundlePath)
	if err != nil {
		return nil, err
	}
	release.BundleSize = size

	if err := s.releaseRepo.Create(ctx, release); err != nil {
		_ = os.Remove(release.BundlePath)
		return nil, err
	}

	s.logService.Log.WithFields(logrus.Fields{
		"release": release.Version,
		"bundle":  release.BundlePath,
		"size":    release.BundleSize,
	}).Info("Release submitted")
	return release, nil
}

func (s *releaseServiceImpl) Publish(ctx context.Context, version uint) (*models.Release, error) {
	if _, err := s.releaseRepo.FindByVersion(ctx, version); err != nil {
		return nil, err
	}
	published, err := s.releaseRepo.MarkPublished(ctx, version, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, models.NewValidationError(fmt.Sprintf("release %d is already published", version))
	}
	return s.releaseRepo.FindByVersion(ctx, version)
}

func (s *releaseServiceImpl) Get(ctx context.Context, version uint) (*models.Release, error) {
	return s.releaseRepo.FindByVersion(ctx, version)
}

func (s *releaseServiceImpl) List(ctx context.Context) ([]models.Release, error) {
	return s.releaseRepo.FindAll(ctx)
}

func (s *releaseServiceImpl) OpenBundle(ctx context.Context, version uint) (*os.File, *models.Release, error) {
	release, err := s.releaseRepo.FindByVersion(ctx, version)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(release.BundlePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, models.NotFound("release bundle", fmt.Sprint(version))
		}
		return nil, nil, &models.StorageError{Op: "open bundle", Err: err}
	}
	return f, release, nil
}
