package catalog

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/shared"
)

// LibraryView is the projection of a library
type LibraryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LibraryReader issues side-effect-free, view-projected queries over
// non-deleted libraries
type LibraryReader interface {
	GetAllLibraries(ctx context.Context) ([]LibraryView, error)

	// GetLibrariesAsSelectListItem renders every library as a choosable
	// option, selected when it owns the given department
	GetLibrariesAsSelectListItem(ctx context.Context, departmentID int64) ([]shared.SelectListItem, error)

	GetLibraryByID(ctx context.Context, id int64) (*LibraryView, error)
}

// LibraryWriter mutates libraries, one transaction per call. Deletion is
// logical: the row is flagged, never removed.
type LibraryWriter interface {
	AddLibrary(ctx context.Context, view LibraryView) (int64, error)
	UpdateLibrary(ctx context.Context, view LibraryView) (bool, error)
	DeleteLibrary(ctx context.Context, id int64) (bool, error)
}
