package catalog

import (
	"context"
)

// DepartmentListView is the flattened list projection of a department,
// carrying the owning library's name
type DepartmentListView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LibraryName string `json:"library_name"`
}

// DepartmentView is the single-record projection of a department
type DepartmentView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	LibraryID int64  `json:"library_id"`
}

// DepartmentReader issues side-effect-free, view-projected queries.
// An empty backing set is returned as an empty result, never as an error.
type DepartmentReader interface {
	GetAllDepartments(ctx context.Context) ([]DepartmentListView, error)
	GetDepartmentsByLibraryID(ctx context.Context, libraryID int64) ([]DepartmentListView, error)
	GetDepartmentByID(ctx context.Context, id int64) (*DepartmentView, error)
}

// DepartmentWriter mutates departments, one transaction per call.
// AddDepartment returns the assigned identity, or -1 when nothing was
// inserted; update and delete report success as a flag. Session errors roll
// back and propagate untranslated.
type DepartmentWriter interface {
	AddDepartment(ctx context.Context, view DepartmentView) (int64, error)
	UpdateDepartment(ctx context.Context, view DepartmentView) (bool, error)
	DeleteDepartment(ctx context.Context, id int64) (bool, error)
}
