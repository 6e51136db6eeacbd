package persistence

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMaterialTypeReadRepository implements catalog.MaterialTypeReader using GORM
type GormMaterialTypeReadRepository struct {
	db *gorm.DB
}

// NewGormMaterialTypeReadRepository creates a new GormMaterialTypeReadRepository
func NewGormMaterialTypeReadRepository(db *gorm.DB) *GormMaterialTypeReadRepository {
	return &GormMaterialTypeReadRepository{db: db}
}

// GetAllMaterialTypes returns every material type
func (r *GormMaterialTypeReadRepository) GetAllMaterialTypes(ctx context.Context) ([]catalog.MaterialTypeView, error) {
	var views []catalog.MaterialTypeView
	if err := r.db.WithContext(ctx).
		Model(&catalog.MaterialType{}).
		Select("id, name").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// GetMaterialTypesAsSelectListItem renders every material type as a choosable
// option, selected when its id equals the caller's category id. A nil
// category id selects nothing.
func (r *GormMaterialTypeReadRepository) GetMaterialTypesAsSelectListItem(ctx context.Context, categoryID *int64) ([]shared.SelectListItem, error) {
	views, err := r.GetAllMaterialTypes(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]shared.SelectListItem, len(views))
	for i, view := range views {
		selected := categoryID != nil && view.ID == *categoryID
		items[i] = shared.NewSelectListItem(view.ID, view.Name, selected)
	}
	return items, nil
}

// GetMaterialTypeByID returns the material type projection, or nil when absent
func (r *GormMaterialTypeReadRepository) GetMaterialTypeByID(ctx context.Context, id int64) (*catalog.MaterialTypeView, error) {
	var view catalog.MaterialTypeView
	result := r.db.WithContext(ctx).
		Model(&catalog.MaterialType{}).
		Select("id, name").
		Where("id = ?", id).
		Limit(1).
		Scan(&view)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &view, nil
}

// GormMaterialTypeWriteRepository implements catalog.MaterialTypeWriter using
// GORM, one transaction per mutation
type GormMaterialTypeWriteRepository struct {
	db *gorm.DB
}

// NewGormMaterialTypeWriteRepository creates a new GormMaterialTypeWriteRepository
func NewGormMaterialTypeWriteRepository(db *gorm.DB) *GormMaterialTypeWriteRepository {
	return &GormMaterialTypeWriteRepository{db: db}
}

// AddMaterialType inserts a material type and returns its assigned identity,
// or -1 when nothing was inserted
func (r *GormMaterialTypeWriteRepository) AddMaterialType(ctx context.Context, view catalog.MaterialTypeView) (int64, error) {
	id := int64(-1)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		materialType := catalog.MaterialType{Name: view.Name}
		result := tx.Create(&materialType)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			id = materialType.ID
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return id, nil
}

// UpdateMaterialType renames the material type; false means no row matched
func (r *GormMaterialTypeWriteRepository) UpdateMaterialType(ctx context.Context, view catalog.MaterialTypeView) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&catalog.MaterialType{}).
			Where("id = ?", view.ID).
			Update("name", view.Name)
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// RemoveMaterialType removes the material type; false means no row matched
func (r *GormMaterialTypeWriteRepository) RemoveMaterialType(ctx context.Context, id int64) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&catalog.MaterialType{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Ensure implementations satisfy the domain contracts
var (
	_ catalog.MaterialTypeReader = (*GormMaterialTypeReadRepository)(nil)
	_ catalog.MaterialTypeWriter = (*GormMaterialTypeWriteRepository)(nil)
)
