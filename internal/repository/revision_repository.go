package repository

import (
	"TrailGuide/internal/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevisionRepository stores immutable revisions of T together with the pointer
// row naming the current revision of each entity.
type RevisionRepository[T any] interface {
	Table() string
	LatestRevision(ctx context.Context, id string) (int, error)
	// InsertAt appends entity as revision expectedPrior+1. It fails with a
	// *models.ConflictError when the pointer no longer names expectedPrior.
	InsertAt(ctx context.Context, entity *T, expectedPrior int) error
	FindCurrent(ctx context.Context, id string) (*T, error)
	FindRevision(ctx context.Context, id string, revision int) (*T, error)
	History(ctx context.Context, id string) ([]models.RevisionInfo, error)
	ListCurrent(ctx context.Context, filter models.CurrentFilter) ([]T, error)
}

type RevisionRepositoryImpl[T any, PT models.RevisionedPtr[T]] struct {
	db           *gorm.DB
	table        string
	currentTable string
	classified   bool
}

func NewRevisionRepository[T any, PT models.RevisionedPtr[T]](db *gorm.DB) RevisionRepository[T] {
	var zero T
	table := PT(&zero).TableName()
	_, classified := any(PT(&zero)).(models.Classified)
	return &RevisionRepositoryImpl[T, PT]{
		db:           db,
		table:        table,
		currentTable: models.CurrentTable(table),
		classified:   classified,
	}
}

func (r *RevisionRepositoryImpl[T, PT]) Table() string {
	return r.table
}

func (r *RevisionRepositoryImpl[T, PT]) LatestRevision(ctx context.Context, id string) (int, error) {
	var current models.CurrentRevision
	err := r.db.WithContext(ctx).Table(r.currentTable).Where("id = ?", id).Take(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, storageError("read "+r.currentTable, err)
	}
	return current.Revision, nil
}

func (r *RevisionRepositoryImpl[T, PT]) InsertAt(ctx context.Context, entity *T, expectedPrior int) error {
	obj := PT(entity)
	id := obj.EntityID()
	next := expectedPrior + 1

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var res *gorm.DB
		if expectedPrior == 0 {
			res = tx.Table(r.currentTable).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.CurrentRevision{ID: id, Revision: next})
		} else {
			res = tx.Table(r.currentTable).
				Where("id = ? AND revision = ?", id, expectedPrior).
				Update("revision", next)
		}
		if res.Error != nil {
			return storageError("advance "+r.currentTable, res.Error)
		}
		if res.RowsAffected != 1 {
			return &models.ConflictError{Entity: r.table, ID: id, Expected: expectedPrior}
		}

		obj.RevisionMeta().Number = next
		if err := tx.Table(r.table).Create(entity).Error; err != nil {
			return storageError("insert "+r.table, err)
		}
		return nil
	})
}

func (r *RevisionRepositoryImpl[T, PT]) currentQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table(r.table).
		Select(r.table+".*").
		Joins(fmt.Sprintf("JOIN %[1]s ON %[1]s.id = %[2]s.id AND %[1]s.revision = %[2]s.revision", r.currentTable, r.table))
}

func (r *RevisionRepositoryImpl[T, PT]) FindCurrent(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.currentQuery(ctx).Where(r.table+".id = ?", id).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound(r.kind(), id)
		}
		return nil, storageError("find "+r.table, err)
	}
	return &entity, nil
}

func (r *RevisionRepositoryImpl[T, PT]) FindRevision(ctx context.Context, id string, revision int) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Table(r.table).Where("id = ? AND revision = ?", id, revision).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound(r.kind()+" revision", fmt.Sprintf("%s@%d", id, revision))
		}
		return nil, storageError("find "+r.table, err)
	}
	return &entity, nil
}

func (r *RevisionRepositoryImpl[T, PT]) History(ctx context.Context, id string) ([]models.RevisionInfo, error) {
	var history []models.RevisionInfo
	err := r.db.WithContext(ctx).
		Table(r.table).
		Select("revision, revision_dt, revision_msg").
		Where("id = ?", id).
		Order("revision").
		Scan(&history).Error
	if err != nil {
		return nil, storageError("history "+r.table, err)
	}
	if len(history) == 0 {
		return nil, models.NotFound(r.kind(), id)
	}
	return history, nil
}

func (r *RevisionRepositoryImpl[T, PT]) ListCurrent(ctx context.Context, filter models.CurrentFilter) ([]T, error) {
	q := r.currentQuery(ctx)
	if filter.Enabled != nil {
		q = q.Where(r.table+".enabled = ?", *filter.Enabled)
	}
	if filter.Deleted != nil {
		q = q.Where(r.table+".deleted = ?", *filter.Deleted)
	}
	if r.classified {
		if filter.Section != "" {
			q = q.Where(r.table+".section = ?", filter.Section)
		}
		if filter.Category != "" {
			q = q.Where(r.table+".category = ?", filter.Category)
		}
	}

	entities := []T{}
	if err := q.Order(r.table + ".rank").Order(r.table + ".title").Find(&entities).Error; err != nil {
		return nil, storageError("list "+r.table, err)
	}
	return entities, nil
}

// kind is the singular entity name used in error messages.
func (r *RevisionRepositoryImpl[T, PT]) kind() string {
	return r.table[:len(r.table)-1]
}

type StationRepository interface {
	RevisionRepository[models.Station]
	// CountByCategory counts the station revisions, current or superseded,
	// that name category.
	CountByCategory(ctx context.Context, category string) (int64, error)
}

type StationRepositoryImpl struct {
	RevisionRepository[models.Station]
	db *gorm.DB
}

func (r *StationRepositoryImpl) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Station{}).Where("category = ?", category).Count(&count).Error
	if err != nil {
		return 0, storageError("count stations", err)
	}
	return count, nil
}

type PageRepository interface {
	RevisionRepository[models.Page]
}

type ModalRepository interface {
	RevisionRepository[models.Modal]
}

func NewStationRepository(db *gorm.DB) StationRepository {
	return &StationRepositoryImpl{
		RevisionRepository: NewRevisionRepository[models.Station](db),
		db:                 db,
	}
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return NewRevisionRepository[models.Page](db)
}

func NewModalRepository(db *gorm.DB) ModalRepository {
	return NewRevisionRepository[models.Modal](db)
}
