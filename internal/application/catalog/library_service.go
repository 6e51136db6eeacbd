package catalog

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrCascadeFailed signals that a library was removed but one of its
// departments could not be deleted. Distinct from a plain failed result so
// callers can tell a half-finished cascade from an ineffective delete.
var ErrCascadeFailed = shared.NewDomainError("CASCADE_FAILED", "Error while deleting library departments.")

// LibraryService orchestrates library reads and writes, including the
// explicit department cascade on removal. The storage layer is never relied
// on to cascade.
type LibraryService struct {
	reader           catalog.LibraryReader
	writer           catalog.LibraryWriter
	departmentReader catalog.DepartmentReader
	departmentWriter catalog.DepartmentWriter
	logger           *zap.Logger
}

// NewLibraryService creates a new LibraryService
func NewLibraryService(
	reader catalog.LibraryReader,
	writer catalog.LibraryWriter,
	departmentReader catalog.DepartmentReader,
	departmentWriter catalog.DepartmentWriter,
	logger *zap.Logger,
) *LibraryService {
	return &LibraryService{
		reader:           reader,
		writer:           writer,
		departmentReader: departmentReader,
		departmentWriter: departmentWriter,
		logger:           logger,
	}
}

// GetAllLibraries returns every library, or not-found when there are none
func (s *LibraryService) GetAllLibraries(ctx context.Context) ([]catalog.LibraryView, error) {
	libraries, err := s.reader.GetAllLibraries(ctx)
	if err != nil {
		return nil, err
	}
	if len(libraries) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return libraries, nil
}

// GetLibrariesAsSelectListItem renders all libraries as choosable options,
// or not-found when there are none
func (s *LibraryService) GetLibrariesAsSelectListItem(ctx context.Context, departmentID int64) ([]shared.SelectListItem, error) {
	items, err := s.reader.GetLibrariesAsSelectListItem(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return items, nil
}

// GetLibraryByID returns one library, or not-found when absent
func (s *LibraryService) GetLibraryByID(ctx context.Context, id int64) (*catalog.LibraryView, error) {
	library, err := s.reader.GetLibraryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if library == nil {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return library, nil
}

// AddLibrary inserts a library and reports the outcome
func (s *LibraryService) AddLibrary(ctx context.Context, view catalog.LibraryView) (shared.ServiceResult, error) {
	id, err := s.writer.AddLibrary(ctx, view)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	result := shared.ServiceResult{ID: id}
	if id < 0 {
		result.SetFailure("Error while inserting library.")
	} else {
		result.SetSuccess("Library added successfully.")
	}
	return result, nil
}

// UpdateLibrary renames a library and reports the outcome
func (s *LibraryService) UpdateLibrary(ctx context.Context, view catalog.LibraryView) (shared.ServiceResult, error) {
	updated, err := s.writer.UpdateLibrary(ctx, view)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	var result shared.ServiceResult
	if !updated {
		result.SetFailure("Error while updating library.")
	} else {
		result.SetSuccess("Library updated successfully.")
	}
	return result, nil
}

// RemoveLibrary is a two-phase cascading delete: the library row first, then
// every department under it, one delete per department. A failed department
// delete after a successful library delete is raised as ErrCascadeFailed;
// zero departments makes the cascade a no-op.
func (s *LibraryService) RemoveLibrary(ctx context.Context, id int64) (shared.ServiceResult, error) {
	deleted, err := s.writer.DeleteLibrary(ctx, id)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	var result shared.ServiceResult
	if !deleted {
		result.SetFailure("Error while deleting library.")
		return result, nil
	}

	departments, err := s.departmentReader.GetDepartmentsByLibraryID(ctx, id)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	for _, department := range departments {
		removed, err := s.departmentWriter.DeleteDepartment(ctx, department.ID)
		if err != nil {
			return shared.ServiceResult{}, err
		}
		if !removed {
			s.logger.Error(ErrCascadeFailed.Message, zap.Int64("department_id", department.ID))
			return shared.ServiceResult{}, ErrCascadeFailed
		}
	}

	result.SetSuccess("Library deleted successfully.")
	return result, nil
}
