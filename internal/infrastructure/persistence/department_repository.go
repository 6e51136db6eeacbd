package persistence

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormDepartmentReadRepository implements catalog.DepartmentReader using GORM.
// Every method issues exactly one query and projects straight into the view
// shape; "not found" is an empty result, never an error.
type GormDepartmentReadRepository struct {
	db *gorm.DB
}

// NewGormDepartmentReadRepository creates a new GormDepartmentReadRepository
func NewGormDepartmentReadRepository(db *gorm.DB) *GormDepartmentReadRepository {
	return &GormDepartmentReadRepository{db: db}
}

// GetAllDepartments returns every department with its library name flattened in
func (r *GormDepartmentReadRepository) GetAllDepartments(ctx context.Context) ([]catalog.DepartmentListView, error) {
	var views []catalog.DepartmentListView
	if err := r.db.WithContext(ctx).
		Model(&catalog.Department{}).
		Select("departments.id, departments.name, libraries.name AS library_name").
		Joins("JOIN libraries ON libraries.id = departments.library_id").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// GetDepartmentsByLibraryID returns the departments owned by the given library
func (r *GormDepartmentReadRepository) GetDepartmentsByLibraryID(ctx context.Context, libraryID int64) ([]catalog.DepartmentListView, error) {
	var views []catalog.DepartmentListView
	if err := r.db.WithContext(ctx).
		Model(&catalog.Department{}).
		Select("departments.id, departments.name, libraries.name AS library_name").
		Joins("JOIN libraries ON libraries.id = departments.library_id").
		Where("departments.library_id = ?", libraryID).
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// GetDepartmentByID returns the department projection, or nil when absent
func (r *GormDepartmentReadRepository) GetDepartmentByID(ctx context.Context, id int64) (*catalog.DepartmentView, error) {
	var view catalog.DepartmentView
	result := r.db.WithContext(ctx).
		Model(&catalog.Department{}).
		Select("id, name, library_id").
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

// GormDepartmentWriteRepository implements catalog.DepartmentWriter using GORM.
// Each mutation runs in its own transaction; session errors roll back and
// propagate untranslated.
type GormDepartmentWriteRepository struct {
	db *gorm.DB
}

// NewGormDepartmentWriteRepository creates a new GormDepartmentWriteRepository
func NewGormDepartmentWriteRepository(db *gorm.DB) *GormDepartmentWriteRepository {
	return &GormDepartmentWriteRepository{db: db}
}

// AddDepartment inserts a department and returns its assigned identity, or -1
// when nothing was inserted. The library reference is guarded by the storage
// foreign key, not re-validated here.
func (r *GormDepartmentWriteRepository) AddDepartment(ctx context.Context, view catalog.DepartmentView) (int64, error) {
	id := int64(-1)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		department := catalog.Department{
			Name:      view.Name,
			LibraryID: view.LibraryID,
		}
		result := tx.Create(&department)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			id = department.ID
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return id, nil
}

// UpdateDepartment rewrites the department row; false means no row matched
func (r *GormDepartmentWriteRepository) UpdateDepartment(ctx context.Context, view catalog.DepartmentView) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&catalog.Department{}).
			Where("id = ?", view.ID).
			Updates(map[string]any{
				"name":       view.Name,
				"library_id": view.LibraryID,
			})
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

// DeleteDepartment physically removes the department; departments only
// disappear as an explicit step of a service-orchestrated cascade
func (r *GormDepartmentWriteRepository) DeleteDepartment(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&catalog.Department{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// Ensure implementations satisfy the domain contracts
var (
	_ catalog.DepartmentReader = (*GormDepartmentReadRepository)(nil)
	_ catalog.DepartmentWriter = (*GormDepartmentWriteRepository)(nil)
)
