package persistence

import (
	"context"
	"errors"
	"reflect"

	"github.com/mediastorage/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRepository implements the generic shared.Repository facade over one
// entity type. Reads execute against the session directly; mutations are
// staged into the unit of work and take effect only on Commit.
type GormRepository[T any] struct {
	db  *gorm.DB
	uow *GormUnitOfWork
}

// NewGormRepository creates a repository bound to the given session and unit of work
func NewGormRepository[T any](db *gorm.DB, uow *GormUnitOfWork) *GormRepository[T] {
	return &GormRepository[T]{db: db, uow: uow}
}

// GetAll returns all entities of T, composed with the given filter and
// eager-load options before the query runs
func (r *GormRepository[T]) GetAll(ctx context.Context, opts ...shared.QueryOption) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	for _, opt := range opts {
		switch o := opt.(type) {
		case shared.WhereOption:
			query = query.Where(o.Condition, o.Args...)
		case shared.IncludeOption:
			query = query.Preload(o.Path)
		}
	}

	var entities []T
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Find returns the entity with the given identity, or nil when absent.
// A missing key is not an error.
func (r *GormRepository[T]) Find(ctx context.Context, id int64) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Add stages an insert
func (r *GormRepository[T]) Add(entity *T) error {
	r.uow.register(func(tx *gorm.DB) (int64, error) {
		result := tx.Create(entity)
		return result.RowsAffected, result.Error
	})
	return nil
}

// Update stages a full update. An entity without its identity set is a caller
// error and fails fast instead of silently updating nothing.
func (r *GormRepository[T]) Update(entity *T) error {
	if !hasIdentity(entity) {
		return shared.ErrInvalidInput
	}
	r.uow.register(func(tx *gorm.DB) (int64, error) {
		result := tx.Save(entity)
		return result.RowsAffected, result.Error
	})
	return nil
}

// Delete stages a removal by identity
func (r *GormRepository[T]) Delete(id int64) {
	r.uow.register(func(tx *gorm.DB) (int64, error) {
		result := tx.Delete(new(T), "id = ?", id)
		return result.RowsAffected, result.Error
	})
}

// DeleteRange stages removal of every given entity
func (r *GormRepository[T]) DeleteRange(entities []T) {
	if len(entities) == 0 {
		return
	}
	r.uow.register(func(tx *gorm.DB) (int64, error) {
		result := tx.Delete(&entities)
		return result.RowsAffected, result.Error
	})
}

// hasIdentity reports whether the entity's ID field carries a value
func hasIdentity(entity any) bool {
	v := reflect.ValueOf(entity)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	id := v.FieldByName("ID")
	return id.IsValid() && !id.IsZero()
}

// Ensure GormRepository satisfies the generic repository contract
var _ shared.Repository[struct{ ID int64 }] = (*GormRepository[struct{ ID int64 }])(nil)
