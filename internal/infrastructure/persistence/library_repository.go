package persistence

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLibraryReadRepository implements catalog.LibraryReader using GORM.
// Logically deleted libraries are invisible to every query.
type GormLibraryReadRepository struct {
	db *gorm.DB
}

// NewGormLibraryReadRepository creates a new GormLibraryReadRepository
func NewGormLibraryReadRepository(db *gorm.DB) *GormLibraryReadRepository {
	return &GormLibraryReadRepository{db: db}
}

// GetAllLibraries returns every non-deleted library
func (r *GormLibraryReadRepository) GetAllLibraries(ctx context.Context) ([]catalog.LibraryView, error) {
	var views []catalog.LibraryView
	if err := r.db.WithContext(ctx).
		Model(&catalog.Library{}).
		Select("id, name").
		Where("is_deleted = ?", false).
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// selectableLibrary is the scan target for the select-list query
type selectableLibrary struct {
	ID       int64
	Name     string
	Selected bool
}

// GetLibrariesAsSelectListItem renders every non-deleted library as a
// choosable option, selected when the library owns the given department
func (r *GormLibraryReadRepository) GetLibrariesAsSelectListItem(ctx context.Context, departmentID int64) ([]shared.SelectListItem, error) {
	var rows []selectableLibrary
	if err := r.db.WithContext(ctx).
		Model(&catalog.Library{}).
		Select("libraries.id, libraries.name, "+
			"EXISTS(SELECT 1 FROM departments WHERE departments.library_id = libraries.id AND departments.id = ?) AS selected", departmentID).
		Where("libraries.is_deleted = ?", false).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]shared.SelectListItem, len(rows))
	for i, row := range rows {
		items[i] = shared.NewSelectListItem(row.ID, row.Name, row.Selected)
	}
	return items, nil
}

// GetLibraryByID returns the library projection, or nil when absent or deleted
func (r *GormLibraryReadRepository) GetLibraryByID(ctx context.Context, id int64) (*catalog.LibraryView, error) {
	var view catalog.LibraryView
	result := r.db.WithContext(ctx).
		Model(&catalog.Library{}).
		Select("id, name").
		Where("id = ? AND is_deleted = ?", id, false).
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

// GormLibraryWriteRepository implements catalog.LibraryWriter using GORM.
// Each mutation runs in its own transaction. Deletion is logical: the row is
// flagged and retained.
type GormLibraryWriteRepository struct {
	db *gorm.DB
}

// NewGormLibraryWriteRepository creates a new GormLibraryWriteRepository
func NewGormLibraryWriteRepository(db *gorm.DB) *GormLibraryWriteRepository {
	return &GormLibraryWriteRepository{db: db}
}

// AddLibrary inserts a library and returns its assigned identity, or -1 when
// nothing was inserted
func (r *GormLibraryWriteRepository) AddLibrary(ctx context.Context, view catalog.LibraryView) (int64, error) {
	id := int64(-1)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		library := catalog.Library{Name: view.Name}
		result := tx.Create(&library)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			id = library.ID
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return id, nil
}

// UpdateLibrary renames the library; false means no live row matched
func (r *GormLibraryWriteRepository) UpdateLibrary(ctx context.Context, view catalog.LibraryView) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&catalog.Library{}).
			Where("id = ? AND is_deleted = ?", view.ID, false).
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

// DeleteLibrary flags the library as deleted; false means no live row matched
func (r *GormLibraryWriteRepository) DeleteLibrary(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&catalog.Library{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Update("is_deleted", true)
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
	_ catalog.LibraryReader = (*GormLibraryReadRepository)(nil)
	_ catalog.LibraryWriter = (*GormLibraryWriteRepository)(nil)
)
