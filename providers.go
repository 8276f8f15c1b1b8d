package main

import (
	"TrailGuide/cmd"
	"TrailGuide/database"
	"TrailGuide/internal/config"
	"TrailGuide/internal/handlers"
	"TrailGuide/internal/repository"
	"TrailGuide/internal/services"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func ProvideConfiguration(configPath string) (*config.Configuration, error) {
	return config.LoadConfiguration(configPath)
}

func ProvideDatabase(cfg *config.Configuration) (*gorm.DB, func(), error) {
	db, err := database.SetupDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { database.CloseDatabase(db) }, nil
}

func ProvideUsageRepository(db *gorm.DB) repository.UsageRepository {
	return repository.NewUsageRepository(db, database.RevisionedTables...)
}

var repositorySet = wire.NewSet(
	ProvideUsageRepository,
	repository.NewAssetRepository,
	repository.NewStationRepository,
	repository.NewPageRepository,
	repository.NewModalRepository,
	repository.NewSectionRepository,
	repository.NewCategoryRepository,
	repository.NewLayerRepository,
	repository.NewFeedbackRepository,
	repository.NewReleaseRepository,
	repository.NewSettingsRepository,
	repository.NewTokenRepository,
)

var serviceSet = wire.NewSet(
	services.NewLogService,
	services.NewUsageService,
	services.NewFileStorage,
	services.NewAssetService,
	services.NewStationService,
	services.NewPageService,
	services.NewModalService,
	services.NewSectionService,
	services.NewCategoryService,
	services.NewLayerService,
	services.NewSettingsService,
	services.NewFeedbackService,
	services.NewClock,
	services.NewCompilerService,
	services.NewBundleService,
	services.NewReleaseService,
	services.NewAuthService,
	services.NewQRService,
	services.NewJanitorService,
)

var handlerSet = wire.NewSet(
	handlers.NewStationHandler,
	handlers.NewPageHandler,
	handlers.NewModalHandler,
	handlers.NewAssetHandler,
	handlers.NewSectionHandler,
	handlers.NewCategoryHandler,
	handlers.NewLayerHandler,
	handlers.NewReleaseHandler,
	handlers.NewSettingsHandler,
	handlers.NewFeedbackHandler,
	handlers.NewSnapshotHandler,
	handlers.NewInfoHandler,
	handlers.NewTokenHandler,
	handlers.NewJanitorHandler,
	wire.Struct(new(cmd.Server), "*"),
)
