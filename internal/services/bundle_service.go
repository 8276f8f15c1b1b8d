package services

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/mapper"
	"TrailGuide/internal/models"
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BundleService packages the compiled content and enabled assets into the zip
// file shipped to app builds.
type BundleService interface {
	NewBundlePath() string
	// Build writes the bundle for release to path and returns its size.
	Build(ctx context.Context, release *models.Release, path string) (int64, error)
}

type bundleServiceImpl struct {
	compilerService CompilerService
	assetService    AssetService
	storage         AssetStorage
	configuration   *config.Configuration
}

func NewBundleService(
	compilerService CompilerService,
	assetService AssetService,
	storage AssetStorage,
	configuration *config.Configuration,
) BundleService {
	return &bundleServiceImpl{
		compilerService: compilerService,
		assetService:    assetService,
		storage:         storage,
		configuration:   configuration,
	}
}

func (s *bundleServiceImpl) NewBundlePath() string {
	return filepath.Join(s.configuration.Storage.BundlePath, uuid.NewString()+".zip")
}

func (s *bundleServiceImpl) Build(ctx context.Context, release *models.Release, path string) (size int64, err error) {
	snapshot, err := s.compilerService.BuildSnapshot(ctx)
	if err != nil {
		return 0, err
	}
	assets, err := s.assetService.List(ctx, true)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return 0, &models.StorageError{Op: "create bundle folder", Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, &models.StorageError{Op: "create bundle", Err: err}
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(path)
		}
	}()

	zw := zip.NewWriter(f)
	documents := []struct {
		name  string
		value interface{}
	}{
		{"config.json", s.configuration.PublicConfig()},
		{"layers.json", snapshot.Layers},
		{"metadata.json", mapper.ToReleaseMetadata(release)},
		{"modals.json", mapper.ToModalsByID(snapshot.Modals)},
		{"pages.json", snapshot.Pages},
		{"settings.json", snapshot.Settings},
		{"stations.json", s.compilerService.SectionsWithStations(snapshot)},
	}
	for _, doc := range documents {
		if err = writeJSONEntry(zw, doc.name, doc.value); err != nil {
			return 0, err
		}
	}

	w, err := zw.Create("assets/assets.js")
	if err != nil {
		return 0, &models.StorageError{Op: "write bundle", Err: err}
	}
	if _, err = io.WriteString(w, s.assetService.AssetManifestJS(assets)); err != nil {
		return 0, &models.StorageError{Op: "write bundle", Err: err}
	}

	for _, asset := range assets {
		if err = s.addAsset(zw, asset); err != nil {
			return 0, err
		}
	}

	if err = zw.Close(); err != nil {
		return 0, &models.StorageError{Op: "finish bundle", Err: err}
	}
	if err = f.Close(); err != nil {
		return 0, &models.StorageError{Op: "finish bundle", Err: err}
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, &models.StorageError{Op: "stat bundle", Err: err}
	}
	return info.Size(), nil
}

func (s *bundleServiceImpl) addAsset(zw *zip.Writer, asset models.Asset) error {
	src, err := s.storage.Open(asset.FileName)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.Create(fmt.Sprintf("assets/%s/%s", asset.AssetType, asset.FileName))
	if err != nil {
		return &models.StorageError{Op: "write bundle", Err: err}
	}
	if _, err := io.Copy(w, src); err != nil {
		return &models.StorageError{Op: "write bundle", Err: err}
	}
	return nil
}

func writeJSONEntry(zw *zip.Writer, name string, value interface{}) error {
	w, err := zw.Create(name)
	if err != nil {
		return &models.StorageError{Op: "write bundle", Err: err}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return &models.StorageError{Op: "write bundle", Err: err}
	}
	return nil
}
