package repository

import (
	"TrailGuide/database"
	"TrailGuide/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// setupContentDB also seeds the sections and category that newStation refers to.
func setupContentDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]models.Section{
		{ID: "red", Title: "Red trail", Color: "#ff0000", Rank: 0},
		{ID: "blue", Title: "Blue trail", Color: "#0000ff", Rank: 1},
	}).Error)
	require.NoError(t, db.Create(&models.Category{ID: "culture", IconSVG: "<svg/>"}).Error)
	return db
}

func newStation(id, title, section string, rank int) *models.Station {
	return &models.Station{
		ID:             id,
		Revision:       models.Revision{Dt: time.Now().UTC(), Message: "test"},
		Title:          title,
		CoordinatesUTM: models.UTMCoordinates{Zone: "18T", East: 100, North: 200},
		Section:        section,
		Category:       "culture",
		Enabled:        true,
		Rank:           rank,
	}
}
