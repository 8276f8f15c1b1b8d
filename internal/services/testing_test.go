package services

import (
	"TrailGuide/database"
	"TrailGuide/internal/config"
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	cfg      *config.Configuration
	log      LogService
	assets   repository.AssetRepository
	usage    UsageService
	storage  AssetStorage
	asset    AssetService
	stations StationService
	pages    PageService
	modals   ModalService
	sections SectionService
	category CategoryService
	layers   LayerService
	settings SettingsService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Configuration{}
	cfg.Storage.AssetPath = t.TempDir()
	cfg.Storage.BundlePath = t.TempDir()
	cfg.Server.RevisionRetries = 3
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.Issuer = "https://auth.example.org/"
	cfg.Auth.Audience = "trail-guide"
	cfg.Auth.OTTLifetime = 60
	cfg.App.AppBaseURL = "https://app.example.org"

	log := LogService{Log: logrus.New()}
	log.Log.SetOutput(io.Discard)

	env := &testEnv{db: db, cfg: cfg, log: log}
	env.assets = repository.NewAssetRepository(db)
	env.usage = NewUsageService(repository.NewUsageRepository(db, database.RevisionedTables...), log)
	env.storage = NewFileStorage(cfg)
	env.asset = NewAssetService(env.assets, env.usage, env.storage, log)

	sectionRepo := repository.NewSectionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	stationRepo := repository.NewStationRepository(db)
	env.stations = NewStationService(stationRepo, sectionRepo, categoryRepo, env.assets, env.usage, log, cfg)
	env.pages = NewPageService(repository.NewPageRepository(db), env.assets, env.usage, log, cfg)
	env.modals = NewModalService(repository.NewModalRepository(db), env.assets, env.usage, log, cfg)
	env.sections = NewSectionService(sectionRepo)
	env.category = NewCategoryService(categoryRepo, stationRepo)
	env.layers = NewLayerService(repository.NewLayerRepository(db))
	env.settings = NewSettingsService(repository.NewSettingsRepository(db))

	ctx := context.Background()
	_, err = env.sections.Put(ctx, &models.Section{ID: "red", Title: "Red trail", Color: "#ff0000", Rank: 0})
	require.NoError(t, err)
	_, err = env.sections.Put(ctx, &models.Section{ID: "blue", Title: "Blue trail", Color: "#0000ff", Rank: 1})
	require.NoError(t, err)
	_, err = env.category.Put(ctx, &models.Category{ID: "culture", IconSVG: "<svg/>"})
	require.NoError(t, err)
	return env
}

func (env *testEnv) upload(t *testing.T, name string) *models.Asset {
	t.Helper()
	asset, err := env.asset.Upload(context.Background(), strings.NewReader("bytes of "+name), name, "", true)
	require.NoError(t, err)
	return asset
}

func station(title, section string, rank int) *models.Station {
	return &models.Station{
		Title:          title,
		CoordinatesUTM: models.UTMCoordinates{Zone: "18T", East: 447000, North: 5030000},
		Section:        section,
		Category:       "culture",
		Enabled:        true,
		Rank:           rank,
	}
}

func fixedClock(month time.Month, day int) Clock {
	return func() time.Time {
		return time.Date(2024, month, day, 12, 0, 0, 0, time.Local)
	}
}
