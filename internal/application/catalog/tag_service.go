package catalog

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TagService orchestrates tag CRUD through the generic repository and the
// unit of work, the same staged-mutation shape as MenuService.
type TagService struct {
	uow     shared.UnitOfWork
	tagRepo shared.Repository[catalog.Tag]
	logger  *zap.Logger
}

// NewTagService creates a new TagService
func NewTagService(uow shared.UnitOfWork, tagRepo shared.Repository[catalog.Tag], logger *zap.Logger) *TagService {
	return &TagService{
		uow:     uow,
		tagRepo: tagRepo,
		logger:  logger,
	}
}

// GetAllTags returns every tag, or not-found when there are none
func (s *TagService) GetAllTags(ctx context.Context) ([]TagView, error) {
	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}

	views := make([]TagView, len(tags))
	for i, tag := range tags {
		views[i] = TagView{ID: tag.ID, Name: tag.Name}
	}
	return views, nil
}

// GetTagByID returns one tag, or nil when absent
func (s *TagService) GetTagByID(ctx context.Context, id int64) (*TagView, error) {
	tag, err := s.tagRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	return &TagView{ID: tag.ID, Name: tag.Name}, nil
}

// AddTag stages a tag insert and commits; success is exactly one affected row
func (s *TagService) AddTag(ctx context.Context, view TagView) (shared.ServiceResult, error) {
	if err := s.tagRepo.Add(&catalog.Tag{Name: view.Name}); err != nil {
		return shared.ServiceResult{}, err
	}

	affected, err := s.uow.Commit(ctx)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	return shared.AddResult(affected == 1), nil
}

// UpdateTag stages a tag update and commits; success is exactly one affected row
func (s *TagService) UpdateTag(ctx context.Context, view TagView) (shared.ServiceResult, error) {
	if err := s.tagRepo.Update(&catalog.Tag{ID: view.ID, Name: view.Name}); err != nil {
		return shared.ServiceResult{}, err
	}

	affected, err := s.uow.Commit(ctx)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	return shared.UpdateResult(affected == 1), nil
}

// RemoveTag stages a tag delete and commits; success is at least one affected row
func (s *TagService) RemoveTag(ctx context.Context, id int64) (shared.ServiceResult, error) {
	s.tagRepo.Delete(id)

	affected, err := s.uow.Commit(ctx)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	return shared.RemoveResult(affected > 0), nil
}
