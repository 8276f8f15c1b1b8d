package database

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/models"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// RevisionedTables lists the tables that keep revision history, in the order
// their pointer and usage tables are created.
var RevisionedTables = []string{
	models.Station{}.TableName(),
	models.Page{}.TableName(),
	models.Modal{}.TableName(),
}

func SetupDatabase(cfg *config.Configuration) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var db *gorm.DB
	var err error
	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.DSN == "" {
			return nil, fmt.Errorf("database.dsn must be set for the postgres driver")
		}
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN), gormConfig)
	case "sqlite":
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, err
			}
		}
		db, err = OpenSQLite(cfg.Database.Path, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"driver": cfg.Database.Driver}).Info("Database ready")
	return db, nil
}

// OpenSQLite opens a sqlite database restricted to a single connection, which
// keeps ":memory:" databases shared and serializes writers. Foreign keys are
// enforced.
func OpenSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	db, err := gorm.Open(sqlite.Open(path+separator+"_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates every table, including the pointer and usage tables of each
// revisioned table, and seeds the asset types. Stations reference sections and
// categories, and assets reference asset types, through foreign keys declared
// on the models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.AssetType{},
		&models.Asset{},
		&models.Section{},
		&models.Category{},
		&models.Station{},
		&models.Page{},
		&models.Modal{},
		&models.Layer{},
		&models.Release{},
		&models.Setting{},
		&models.Feedback{},
		&models.OneTimeToken{},
	)
	if err != nil {
		return err
	}

	for _, table := range RevisionedTables {
		if err := db.Table(models.CurrentTable(table)).AutoMigrate(&models.CurrentRevision{}); err != nil {
			return err
		}
		usage := models.UsageTable(table)
		if err := db.Table(usage).AutoMigrate(&models.AssetUsage{}); err != nil {
			return err
		}
		// Index names are shared across tables, so each usage table gets its own.
		if err := db.Exec(fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%[1]s_asset_id ON %[1]s (asset_id)", usage)).Error; err != nil {
			return err
		}
	}

	types := make([]models.AssetType, 0, len(models.AssetTypes))
	for _, t := range models.AssetTypes {
		types = append(types, models.AssetType{ID: t})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("Error closing database: %v", err)
	}
}
