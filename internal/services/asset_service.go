package services

import (
	"TrailGuide/internal/helpers"
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AssetService interface {
	Upload(ctx context.Context, src io.Reader, fileName, typeHint string, enabled bool) (*models.Asset, error)
	Get(ctx context.Context, id string) (*models.Asset, error)
	List(ctx context.Context, enabledOnly bool) ([]models.Asset, error)
	ListWithUsage(ctx context.Context) ([]models.AssetWithUsage, error)
	FindByChecksum(ctx context.Context, sha1 string) ([]models.Asset, error)
	ListTypes(ctx context.Context) ([]models.AssetType, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (*models.Asset, error)
	// ReplaceFile swaps the binary of an asset. The asset type may not change.
	ReplaceFile(ctx context.Context, id string, src io.Reader, fileName string) (*models.Asset, error)
	Open(ctx context.Context, id string) (io.ReadSeekCloser, string, error)
	// SoftDelete retires an asset that no current revision uses and removes
	// its binary.
	SoftDelete(ctx context.Context, id string) error
	AssetManifestJS(assets []models.Asset) string
}

type assetServiceImpl struct {
	assetRepo    repository.AssetRepository
	usageService UsageService
	storage      AssetStorage
	logService   LogService
	now          func() time.Time
}

func NewAssetService(
	assetRepo repository.AssetRepository,
	usageService UsageService,
	storage AssetStorage,
	logService LogService,
) AssetService {
	return &assetServiceImpl{
		assetRepo:    assetRepo,
		usageService: usageService,
		storage:      storage,
		logService:   logService,
		now:          time.Now,
	}
}

func (s *assetServiceImpl) resolveType(ctx context.Context, fileName, typeHint string) (string, error) {
	assetType, ok := helpers.DetectAssetType(fileName)
	if !ok {
		if typeHint == "" {
			return "", models.NewValidationError("no asset_type provided, and could not figure it out automatically")
		}
		assetType = typeHint
	}
	exists, err := s.assetRepo.TypeExists(ctx, assetType)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", models.NewValidationError(fmt.Sprintf("unknown asset type %s", assetType))
	}
	return assetType, nil
}

func (s *assetServiceImpl) Upload(ctx context.Context, src io.Reader, fileName, typeHint string, enabled bool) (*models.Asset, error) {
	assetType, err := s.resolveType(ctx, fileName, typeHint)
	if err != nil {
		return nil, err
	}

	stored, err := s.storage.Store(src, fileName)
	if err != nil {
		return nil, err
	}
	if stored.Size <= 0 {
		s.removeFile(stored.FileName)
		return nil, models.NewValidationError("file_size must be greater than 0")
	}

	asset := &models.Asset{
		ID:           uuid.NewString(),
		AssetType:    assetType,
		FileName:     stored.FileName,
		FileSize:     stored.Size,
		SHA1Checksum: stored.SHA1,
		Enabled:      enabled,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		s.removeFile(stored.FileName)
		return nil, err
	}

	s.logService.Log.WithFields(logrus.Fields{
		"asset": asset.ID,
		"type":  asset.AssetType,
		"size":  asset.FileSize,
	}).Info("Asset uploaded")
	return asset, nil
}

func (s *assetServiceImpl) removeFile(fileName string) {
	if err := s.storage.Delete(fileName); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"file":  fileName,
			"error": err.Error(),
		}).Warn("Could not remove asset file")
	}
}

func (s *assetServiceImpl) Get(ctx context.Context, id string) (*models.Asset, error) {
	return s.assetRepo.FindByID(ctx, id)
}

func (s *assetServiceImpl) List(ctx context.Context, enabledOnly bool) ([]models.Asset, error) {
	return s.assetRepo.FindFiltered(ctx, enabledOnly)
}

func (s *assetServiceImpl) ListWithUsage(ctx context.Context) ([]models.AssetWithUsage, error) {
	assets, err := s.assetRepo.FindFiltered(ctx, false)
	if err != nil {
		return nil, err
	}
	counts, err := s.usageService.UsageCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.AssetWithUsage, 0, len(assets))
	for _, asset := range assets {
		count := counts[asset.ID]
		out = append(out, models.AssetWithUsage{
			Asset:              asset,
			TimesUsedByAll:     count.All,
			TimesUsedByEnabled: count.Enabled,
		})
	}
	return out, nil
}

func (s *assetServiceImpl) FindByChecksum(ctx context.Context, sha1 string) ([]models.Asset, error) {
	return s.assetRepo.FindByChecksum(ctx, strings.ToLower(sha1))
}

func (s *assetServiceImpl) ListTypes(ctx context.Context) ([]models.AssetType, error) {
	return s.assetRepo.FindTypes(ctx)
}

func (s *assetServiceImpl) liveAsset(ctx context.Context, id string) (*models.Asset, error) {
	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset.Deleted {
		return nil, models.NotFound("asset", id)
	}
	return asset, nil
}

func (s *assetServiceImpl) SetEnabled(ctx context.Context, id string, enabled bool) (*models.Asset, error) {
	asset, err := s.liveAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	asset.Enabled = enabled
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetServiceImpl) ReplaceFile(ctx context.Context, id string, src io.Reader, fileName string) (*models.Asset, error) {
	asset, err := s.liveAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	assetType, err := s.resolveType(ctx, fileName, asset.AssetType)
	if err != nil {
		return nil, err
	}
	if assetType != asset.AssetType {
		return nil, models.NewValidationError("cannot change asset type")
	}

	stored, err := s.storage.Store(src, fileName)
	if err != nil {
		return nil, err
	}
	if stored.Size <= 0 {
		s.removeFile(stored.FileName)
		return nil, models.NewValidationError("file_size must be greater than 0")
	}

	oldFileName := asset.FileName
	asset.FileName = stored.FileName
	asset.FileSize = stored.Size
	asset.SHA1Checksum = stored.SHA1
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		s.removeFile(stored.FileName)
		return nil, err
	}
	s.removeFile(oldFileName)
	return asset, nil
}

func (s *assetServiceImpl) Open(ctx context.Context, id string) (io.ReadSeekCloser, string, error) {
	asset, err := s.liveAsset(ctx, id)
	if err != nil {
		return nil, "", err
	}
	f, err := s.storage.Open(asset.FileName)
	if err != nil {
		return nil, "", err
	}
	return f, helpers.ContentTypeFor(asset.AssetType, asset.FileName), nil
}

func (s *assetServiceImpl) SoftDelete(ctx context.Context, id string) error {
	asset, err := s.liveAsset(ctx, id)
	if err != nil {
		return err
	}
	reachable, err := s.usageService.IsReachable(ctx, id)
	if err != nil {
		return err
	}
	if reachable {
		return models.NewValidationError(fmt.Sprintf("asset %s is used by a current revision", id))
	}

	asset.Deleted = true
	asset.Enabled = false
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return err
	}
	s.removeFile(asset.FileName)

	s.logService.Log.WithFields(logrus.Fields{
		"asset": asset.ID,
		"file":  asset.FileName,
	}).Info("Asset deleted")
	return nil
}

// AssetManifestJS renders assets/assets.js, an ES module mapping each asset
// type to the bundled files of that type.
func (s *assetServiceImpl) AssetManifestJS(assets []models.Asset) string {
	byType := make(map[string][]models.Asset)
	for _, asset := range assets {
		byType[asset.AssetType] = append(byType[asset.AssetType], asset)
	}

	var b strings.Builder
	b.WriteString("// Generated automatically by trail-guide-content-server\n")
	fmt.Fprintf(&b, "// at %s\n", s.now().Format(time.RFC3339))
	b.WriteString("export default {\n")
	for _, assetType := range models.AssetTypes {
		fmt.Fprintf(&b, "    %s: {\n", jsString(assetType))
		group := byType[assetType]
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		for _, asset := range group {
			fmt.Fprintf(&b, "        %s: require(%s),\n",
				jsString(asset.ID), jsString("./"+assetType+"/"+asset.FileName))
		}
		b.WriteString("    },\n")
	}
	b.WriteString("};\n")
	return b.String()
}

func jsString(s string) string {
	encoded, _ := json.Marshal(s)
	return string(encoded)
}
