package repository

import (
	"TrailGuide/internal/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db   *gorm.DB
	kind string
	// order is applied to FindAll; empty keeps the database order.
	order string
}

func NewGenericRepository[T any](db *gorm.DB, kind string, order string) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db, kind: kind, order: order}
}

func (r *GenericRepositoryImpl[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return storageError("create "+r.kind, err)
	}
	return nil
}

func (r *GenericRepositoryImpl[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(r.pk()+" = ?", id).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound(r.kind, id)
		}
		return nil, storageError("find "+r.kind, err)
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	q := r.db.WithContext(ctx)
	if r.order != "" {
		q = q.Order(r.order)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, storageError("list "+r.kind, err)
	}
	return entities, nil
}

func (r *GenericRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return storageError("update "+r.kind, err)
	}
	return nil
}

func (r *GenericRepositoryImpl[T]) Delete(ctx context.Context, id string) error {
	var entity T
	res := r.db.WithContext(ctx).Where(r.pk()+" = ?", id).Delete(&entity)
	if res.Error != nil {
		return storageError("delete "+r.kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NotFound(r.kind, id)
	}
	return nil
}

// pk resolves the primary key column of T, which is not always "id".
func (r *GenericRepositoryImpl[T]) pk() string {
	var entity T
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(&entity); err != nil || stmt.Schema.PrioritizedPrimaryField == nil {
		return "id"
	}
	return stmt.Schema.PrioritizedPrimaryField.DBName
}

func storageError(op string, err error) error {
	var se *models.StorageError
	if errors.As(err, &se) {
		return err
	}
	return &models.StorageError{Op: op, Err: err}
}
