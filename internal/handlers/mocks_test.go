package handlers

import (
	"TrailGuide/internal/models"
	"context"
	"io"
	"os"

	"github.com/stretchr/testify/mock"
)

type MockStationService struct {
	mock.Mock
}

func (m *MockStationService) station(args mock.Arguments) (*models.Station, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Station), args.Error(1)
}

func (m *MockStationService) Create(ctx context.Context, entity *models.Station, message string) (*models.Station, error) {
	return m.station(m.Called(entity, message))
}

func (m *MockStationService) CreateRevision(ctx context.Context, id string, entity *models.Station, message string) (*models.Station, error) {
	return m.station(m.Called(id, entity, message))
}

func (m *MockStationService) CreateRevisionAt(ctx context.Context, id string, entity *models.Station, message string, expectedPrior int) (*models.Station, error) {
	return m.station(m.Called(id, entity, message, expectedPrior))
}

func (m *MockStationService) GetCurrent(ctx context.Context, id string) (*models.Station, error) {
	return m.station(m.Called(id))
}

func (m *MockStationService) GetRevision(ctx context.Context, id string, revision int) (*models.Station, error) {
	return m.station(m.Called(id, revision))
}

func (m *MockStationService) ListHistory(ctx context.Context, id string) ([]models.RevisionInfo, error) {
	args := m.Called(id)
	return args.Get(0).([]models.RevisionInfo), args.Error(1)
}

func (m *MockStationService) ListCurrent(ctx context.Context, filter models.CurrentFilter) ([]models.Station, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Station), args.Error(1)
}

func (m *MockStationService) SoftDelete(ctx context.Context, id string, message string) (*models.Station, error) {
	return m.station(m.Called(id, message))
}

func (m *MockStationService) AllCurrent(ctx context.Context) ([]models.Revisioned, error) {
	args := m.Called()
	return args.Get(0).([]models.Revisioned), args.Error(1)
}

type MockQRService struct {
	mock.Mock
}

func (m *MockQRService) StationQR(id string) ([]byte, error) {
	args := m.Called(id)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockQRService) PageQR(id string) ([]byte, error) {
	args := m.Called(id)
	return args.Get(0).([]byte), args.Error(1)
}

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) asset(args mock.Arguments) (*models.Asset, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetService) Upload(ctx context.Context, src io.Reader, fileName, typeHint string, enabled bool) (*models.Asset, error) {
	data, _ := io.ReadAll(src)
	return m.asset(m.Called(string(data), fileName, typeHint, enabled))
}

func (m *MockAssetService) Get(ctx context.Context, id string) (*models.Asset, error) {
	return m.asset(m.Called(id))
}

func (m *MockAssetService) List(ctx context.Context, enabledOnly bool) ([]models.Asset, error) {
	args := m.Called(enabledOnly)
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetService) ListWithUsage(ctx context.Context) ([]models.AssetWithUsage, error) {
	args := m.Called()
	return args.Get(0).([]models.AssetWithUsage), args.Error(1)
}

func (m *MockAssetService) FindByChecksum(ctx context.Context, sha1 string) ([]models.Asset, error) {
	args := m.Called(sha1)
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetService) ListTypes(ctx context.Context) ([]models.AssetType, error) {
	args := m.Called()
	return args.Get(0).([]models.AssetType), args.Error(1)
}

func (m *MockAssetService) SetEnabled(ctx context.Context, id string, enabled bool) (*models.Asset, error) {
	return m.asset(m.Called(id, enabled))
}

func (m *MockAssetService) ReplaceFile(ctx context.Context, id string, src io.Reader, fileName string) (*models.Asset, error) {
	data, _ := io.ReadAll(src)
	return m.asset(m.Called(id, string(data), fileName))
}

func (m *MockAssetService) Open(ctx context.Context, id string) (io.ReadSeekCloser, string, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadSeekCloser), args.String(1), args.Error(2)
}

func (m *MockAssetService) SoftDelete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *MockAssetService) AssetManifestJS(assets []models.Asset) string {
	return m.Called(assets).String(0)
}

type MockReleaseService struct {
	mock.Mock
}

func (m *MockReleaseService) release(args mock.Arguments) (*models.Release, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Release), args.Error(1)
}

func (m *MockReleaseService) Submit(ctx context.Context, notes string) (*models.Release, error) {
	return m.release(m.Called(notes))
}

func (m *MockReleaseService) Publish(ctx context.Context, version uint) (*models.Release, error) {
	return m.release(m.Called(version))
}

func (m *MockReleaseService) Get(ctx context.Context, version uint) (*models.Release, error) {
	return m.release(m.Called(version))
}

func (m *MockReleaseService) List(ctx context.Context) ([]models.Release, error) {
	args := m.Called()
	return args.Get(0).([]models.Release), args.Error(1)
}

func (m *MockReleaseService) OpenBundle(ctx context.Context, version uint) (*os.File, *models.Release, error) {
	args := m.Called(version)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*os.File), args.Get(1).(*models.Release), args.Error(2)
}
