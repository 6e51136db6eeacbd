package catalog

import (
	"context"
	"errors"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DepartmentService orchestrates department reads and writes.
// Required reads that come back empty are raised as not-found; write failures
// are reported as failed service results, never as errors.
type DepartmentService struct {
	reader catalog.DepartmentReader
	writer catalog.DepartmentWriter
	logger *zap.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(reader catalog.DepartmentReader, writer catalog.DepartmentWriter, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

// GetAllDepartments returns every department, or not-found when there are none
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]catalog.DepartmentListView, error) {
	departments, err := s.reader.GetAllDepartments(ctx)
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return departments, nil
}

// GetDepartmentsByLibraryID returns the departments of a library, or
// not-found when the library has none
func (s *DepartmentService) GetDepartmentsByLibraryID(ctx context.Context, libraryID int64) ([]catalog.DepartmentListView, error) {
	departments, err := s.reader.GetDepartmentsByLibraryID(ctx, libraryID)
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return departments, nil
}

// GetDepartmentByID returns one department, or not-found when absent
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*catalog.DepartmentView, error) {
	department, err := s.reader.GetDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return department, nil
}

// HasDepartmentsByLibraryID is a presence check built on GetDepartmentByID;
// the raised not-found is converted into false instead of propagating
func (s *DepartmentService) HasDepartmentsByLibraryID(ctx context.Context, libraryID int64) (bool, error) {
	department, err := s.GetDepartmentByID(ctx, libraryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return department != nil && department.ID > 0, nil
}

// AddDepartment inserts a department and reports the outcome
func (s *DepartmentService) AddDepartment(ctx context.Context, view catalog.DepartmentView) (shared.ServiceResult, error) {
	id, err := s.writer.AddDepartment(ctx, view)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	result := shared.ServiceResult{ID: id}
	if id < 0 {
		result.SetFailure("Error while inserting department.")
	} else {
		result.SetSuccess("Department added successfully.")
	}
	return result, nil
}

// UpdateDepartment rewrites a department and reports the outcome
func (s *DepartmentService) UpdateDepartment(ctx context.Context, view catalog.DepartmentView) (shared.ServiceResult, error) {
	updated, err := s.writer.UpdateDepartment(ctx, view)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	var result shared.ServiceResult
	if !updated {
		result.SetFailure("Error while updating department.")
	} else {
		result.SetSuccess("Department updated successfully.")
	}
	return result, nil
}

// RemoveDepartment deletes a department and reports the outcome
func (s *DepartmentService) RemoveDepartment(ctx context.Context, id int64) (shared.ServiceResult, error) {
	deleted, err := s.writer.DeleteDepartment(ctx, id)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	var result shared.ServiceResult
	if !deleted {
		result.SetFailure("Error while deleting department.")
	} else {
		result.SetSuccess("Department deleted successfully.")
	}
	return result, nil
}
