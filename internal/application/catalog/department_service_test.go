package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockDepartmentReader is a mock implementation of catalog.DepartmentReader
type MockDepartmentReader struct {
	mock.Mock
}

func (m *MockDepartmentReader) GetAllDepartments(ctx context.Context) ([]catalog.DepartmentListView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.DepartmentListView), args.Error(1)
}

func (m *MockDepartmentReader) GetDepartmentsByLibraryID(ctx context.Context, libraryID int64) ([]catalog.DepartmentListView, error) {
	args := m.Called(ctx, libraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.DepartmentListView), args.Error(1)
}

func (m *MockDepartmentReader) GetDepartmentByID(ctx context.Context, id int64) (*catalog.DepartmentView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DepartmentView), args.Error(1)
}

// MockDepartmentWriter is a mock implementation of catalog.DepartmentWriter
type MockDepartmentWriter struct {
	mock.Mock
}

func (m *MockDepartmentWriter) AddDepartment(ctx context.Context, view catalog.DepartmentView) (int64, error) {
	args := m.Called(ctx, view)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentWriter) UpdateDepartment(ctx context.Context, view catalog.DepartmentView) (bool, error) {
	args := m.Called(ctx, view)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentWriter) DeleteDepartment(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newDepartmentService(reader *MockDepartmentReader, writer *MockDepartmentWriter) *DepartmentService {
	return NewDepartmentService(reader, writer, zap.NewNop())
}

func TestDepartmentService_GetAllDepartments(t *testing.T) {
	t.Run("returns all departments", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		expected := []catalog.DepartmentListView{
			{ID: 1, Name: "Sales", LibraryName: "Central"},
			{ID: 2, Name: "Management", LibraryName: "Central"},
		}
		reader.On("GetAllDepartments", mock.Anything).Return(expected, nil)

		departments, err := svc.GetAllDepartments(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, expected, departments)
		reader.AssertExpectations(t)
	})

	t.Run("raises not found when empty", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		reader.On("GetAllDepartments", mock.Anything).Return([]catalog.DepartmentListView{}, nil)

		departments, err := svc.GetAllDepartments(context.Background())

		assert.Nil(t, departments)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("propagates reader errors", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		readerErr := errors.New("connection refused")
		reader.On("GetAllDepartments", mock.Anything).Return(nil, readerErr)

		departments, err := svc.GetAllDepartments(context.Background())

		assert.Nil(t, departments)
		assert.Equal(t, readerErr, err)
	})
}

func TestDepartmentService_GetDepartmentsByLibraryID(t *testing.T) {
	t.Run("returns departments of one library", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		expected := []catalog.DepartmentListView{{ID: 3, Name: "Archives", LibraryName: "East"}}
		reader.On("GetDepartmentsByLibraryID", mock.Anything, int64(7)).Return(expected, nil)

		departments, err := svc.GetDepartmentsByLibraryID(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, expected, departments)
	})

	t.Run("raises not found for a library without departments", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		reader.On("GetDepartmentsByLibraryID", mock.Anything, int64(7)).Return([]catalog.DepartmentListView{}, nil)

		departments, err := svc.GetDepartmentsByLibraryID(context.Background(), 7)

		assert.Nil(t, departments)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestDepartmentService_GetDepartmentByID(t *testing.T) {
	t.Run("returns one department", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		expected := &catalog.DepartmentView{ID: 5, Name: "Sales", LibraryID: 2}
		reader.On("GetDepartmentByID", mock.Anything, int64(5)).Return(expected, nil)

		department, err := svc.GetDepartmentByID(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, expected, department)
	})

	t.Run("raises not found when absent", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		reader.On("GetDepartmentByID", mock.Anything, int64(5)).Return(nil, nil)

		department, err := svc.GetDepartmentByID(context.Background(), 5)

		assert.Nil(t, department)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestDepartmentService_HasDepartmentsByLibraryID(t *testing.T) {
	t.Run("converts not found into false", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		reader.On("GetDepartmentByID", mock.Anything, int64(9)).Return(nil, nil)

		has, err := svc.HasDepartmentsByLibraryID(context.Background(), 9)

		assert.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("reports presence", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		reader.On("GetDepartmentByID", mock.Anything, int64(9)).
			Return(&catalog.DepartmentView{ID: 9, Name: "Sales", LibraryID: 1}, nil)

		has, err := svc.HasDepartmentsByLibraryID(context.Background(), 9)

		assert.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("propagates infrastructure errors", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		readerErr := errors.New("timeout")
		reader.On("GetDepartmentByID", mock.Anything, int64(9)).Return(nil, readerErr)

		has, err := svc.HasDepartmentsByLibraryID(context.Background(), 9)

		assert.False(t, has)
		assert.Equal(t, readerErr, err)
	})
}

func TestDepartmentService_AddDepartment(t *testing.T) {
	t.Run("reports success with the assigned identity", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		view := catalog.DepartmentView{Name: "Sales", LibraryID: 2}
		writer.On("AddDepartment", mock.Anything, view).Return(int64(11), nil)

		result, err := svc.AddDepartment(context.Background(), view)

		assert.NoError(t, err)
		assert.True(t, result.IsSuccessful)
		assert.Equal(t, int64(11), result.ID)
		assert.Equal(t, "Department added successfully.", result.Message)
	})

	t.Run("reports failure on the not-executed sentinel", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		view := catalog.DepartmentView{Name: "Sales", LibraryID: 2}
		writer.On("AddDepartment", mock.Anything, view).Return(int64(-1), nil)

		result, err := svc.AddDepartment(context.Background(), view)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Error while inserting department.", result.Message)
	})

	t.Run("propagates writer errors with a zero result", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		view := catalog.DepartmentView{Name: "Sales", LibraryID: 2}
		writerErr := errors.New("deadlock detected")
		writer.On("AddDepartment", mock.Anything, view).Return(int64(-1), writerErr)

		result, err := svc.AddDepartment(context.Background(), view)

		assert.Equal(t, writerErr, err)
		assert.Equal(t, shared.ServiceResult{}, result)
	})
}

func TestDepartmentService_UpdateDepartment(t *testing.T) {
	t.Run("reports success", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		view := catalog.DepartmentView{ID: 4, Name: "Sales", LibraryID: 2}
		writer.On("UpdateDepartment", mock.Anything, view).Return(true, nil)

		result, err := svc.UpdateDepartment(context.Background(), view)

		assert.NoError(t, err)
		assert.True(t, result.IsSuccessful)
		assert.Equal(t, "Department updated successfully.", result.Message)
	})

	t.Run("reports failure when nothing changed", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		view := catalog.DepartmentView{ID: 4, Name: "Sales", LibraryID: 2}
		writer.On("UpdateDepartment", mock.Anything, view).Return(false, nil)

		result, err := svc.UpdateDepartment(context.Background(), view)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Error while updating department.", result.Message)
	})
}

func TestDepartmentService_RemoveDepartment(t *testing.T) {
	t.Run("reports success", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		writer.On("DeleteDepartment", mock.Anything, int64(4)).Return(true, nil)

		result, err := svc.RemoveDepartment(context.Background(), 4)

		assert.NoError(t, err)
		assert.True(t, result.IsSuccessful)
		assert.Equal(t, "Department deleted successfully.", result.Message)
	})

	t.Run("reports failure for an absent department", func(t *testing.T) {
		reader := new(MockDepartmentReader)
		writer := new(MockDepartmentWriter)
		svc := newDepartmentService(reader, writer)

		writer.On("DeleteDepartment", mock.Anything, int64(4)).Return(false, nil)

		result, err := svc.RemoveDepartment(context.Background(), 4)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Error while deleting department.", result.Message)
	})
}
