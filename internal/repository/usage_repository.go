package repository

import (
	"TrailGuide/internal/models"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// UsageRepository maintains the <table>_assets_used rows of every revisioned
// table and answers questions about the usage of current revisions.
type UsageRepository interface {
	Replace(ctx context.Context, table, objID string, revision int, assetIDs []string) error
	IsReachable(ctx context.Context, assetID string) (bool, error)
	// UnreachableRows opens a cursor over the IDs of non-deleted assets that no
	// current revision uses. The caller must close it.
	UnreachableRows(ctx context.Context) (*sql.Rows, error)
	CurrentCounts(ctx context.Context) (map[string]models.UsageCount, error)
}

type UsageRepositoryImpl struct {
	db     *gorm.DB
	tables []string
}

func NewUsageRepository(db *gorm.DB, tables ...string) UsageRepository {
	return &UsageRepositoryImpl{db: db, tables: tables}
}

func (r *UsageRepositoryImpl) Replace(ctx context.Context, table, objID string, revision int, assetIDs []string) error {
	usageTable := models.UsageTable(table)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Table(usageTable).
			Where("obj_id = ? AND revision = ?", objID, revision).
			Delete(&models.AssetUsage{}).Error
		if err != nil {
			return storageError("clear "+usageTable, err)
		}
		if len(assetIDs) == 0 {
			return nil
		}
		rows := make([]models.AssetUsage, 0, len(assetIDs))
		for _, assetID := range assetIDs {
			rows = append(rows, models.AssetUsage{ObjID: objID, Revision: revision, AssetID: assetID})
		}
		if err := tx.Table(usageTable).Create(&rows).Error; err != nil {
			return storageError("insert "+usageTable, err)
		}
		return nil
	})
}

// currentUsage selects (asset_id, enabled, deleted) for every asset used by a
// current revision of any revisioned table.
func (r *UsageRepositoryImpl) currentUsage() string {
	parts := make([]string, 0, len(r.tables))
	for _, t := range r.tables {
		parts = append(parts, fmt.Sprintf(
			"SELECT u.asset_id AS asset_id, t.enabled AS enabled, t.deleted AS deleted FROM %s u"+
				" JOIN %s c ON c.id = u.obj_id AND c.revision = u.revision"+
				" JOIN %s t ON t.id = u.obj_id AND t.revision = u.revision",
			models.UsageTable(t), models.CurrentTable(t), t))
	}
	return strings.Join(parts, " UNION ALL ")
}

func (r *UsageRepositoryImpl) IsReachable(ctx context.Context, assetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT COUNT(*) FROM (%s) cur WHERE cur.asset_id = ?", r.currentUsage()), assetID).
		Scan(&count).Error
	if err != nil {
		return false, storageError("reachability", err)
	}
	return count > 0, nil
}

func (r *UsageRepositoryImpl) UnreachableRows(ctx context.Context) (*sql.Rows, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf(
			"SELECT a.id FROM assets a WHERE a.deleted = ? AND a.id NOT IN (SELECT cur.asset_id FROM (%s) cur) ORDER BY a.created_at, a.id",
			r.currentUsage()), false).
		Rows()
	if err != nil {
		return nil, storageError("unreachable assets", err)
	}
	return rows, nil
}

func (r *UsageRepositoryImpl) CurrentCounts(ctx context.Context) (map[string]models.UsageCount, error) {
	var rows []struct {
		AssetID      string
		AllCount     int
		EnabledCount int
	}
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf(
			"SELECT cur.asset_id AS asset_id, COUNT(*) AS all_count,"+
				" SUM(CASE WHEN cur.enabled AND NOT cur.deleted THEN 1 ELSE 0 END) AS enabled_count"+
				" FROM (%s) cur GROUP BY cur.asset_id", r.currentUsage())).
		Scan(&rows).Error
	if err != nil {
		return nil, storageError("usage counts", err)
	}
	counts := make(map[string]models.UsageCount, len(rows))
	for _, row := range rows {
		counts[row.AssetID] = models.UsageCount{All: row.AllCount, Enabled: row.EnabledCount}
	}
	return counts, nil
}
