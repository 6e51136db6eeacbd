package catalog

import (
	"context"
	"testing"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTagService() (*TagService, *MockUnitOfWork, *MockRepository[catalog.Tag]) {
	uow := new(MockUnitOfWork)
	repo := new(MockRepository[catalog.Tag])
	return NewTagService(uow, repo, zap.NewNop()), uow, repo
}

func TestTagService_GetAllTags(t *testing.T) {
	t.Run("returns all tags", func(t *testing.T) {
		svc, _, repo := newTagService()

		repo.On("GetAll", mock.Anything).Return([]catalog.Tag{
			{ID: 1, Name: "fiction"},
			{ID: 2, Name: "rare"},
		}, nil)

		tags, err := svc.GetAllTags(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []TagView{{ID: 1, Name: "fiction"}, {ID: 2, Name: "rare"}}, tags)
	})

	t.Run("raises not found when empty", func(t *testing.T) {
		svc, _, repo := newTagService()

		repo.On("GetAll", mock.Anything).Return([]catalog.Tag{}, nil)

		tags, err := svc.GetAllTags(context.Background())

		assert.Nil(t, tags)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTagService_GetTagByID(t *testing.T) {
	t.Run("returns nil without error when absent", func(t *testing.T) {
		svc, _, repo := newTagService()

		repo.On("Find", mock.Anything, int64(3)).Return(nil, nil)

		tag, err := svc.GetTagByID(context.Background(), 3)

		assert.NoError(t, err)
		assert.Nil(t, tag)
	})
}

func TestTagService_AddTag(t *testing.T) {
	t.Run("succeeds when exactly one record was affected", func(t *testing.T) {
		svc, uow, repo := newTagService()

		repo.On("Add", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(int64(1), nil)

		result, err := svc.AddTag(context.Background(), TagView{Name: "fiction"})

		assert.NoError(t, err)
		assert.True(t, result.IsSuccessful)
		assert.Equal(t, "Record added successfully.", result.Message)
	})

	t.Run("fails when the commit affected nothing", func(t *testing.T) {
		svc, uow, repo := newTagService()

		repo.On("Add", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(int64(0), nil)

		result, err := svc.AddTag(context.Background(), TagView{Name: "fiction"})

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
	})
}

func TestTagService_UpdateTag(t *testing.T) {
	t.Run("fails fast when the tag carries no identity", func(t *testing.T) {
		svc, uow, repo := newTagService()

		repo.On("Update", mock.Anything).Return(shared.ErrInvalidInput)

		result, err := svc.UpdateTag(context.Background(), TagView{Name: "fiction"})

		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Equal(t, shared.ServiceResult{}, result)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestTagService_RemoveTag(t *testing.T) {
	t.Run("fails when nothing was affected", func(t *testing.T) {
		svc, uow, repo := newTagService()

		repo.On("Delete", int64(5)).Return()
		uow.On("Commit", mock.Anything).Return(int64(0), nil)

		result, err := svc.RemoveTag(context.Background(), 5)

		assert.NoError(t, err)
		assert.False(t, result.IsSuccessful)
		assert.Equal(t, "Error while deleting record.", result.Message)
	})

	t.Run("succeeds when the record was removed", func(t *testing.T) {
		svc, uow, repo := newTagService()

		repo.On("Delete", int64(5)).Return()
		uow.On("Commit", mock.Anything).Return(int64(1), nil)

		result, err := svc.RemoveTag(context.Background(), 5)

		assert.NoError(t, err)
		assert.True(t, result.IsSuccessful)
	})
}
