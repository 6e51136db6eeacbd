package catalog

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MaterialTypeStore is the substitutable data-access seam behind
// MaterialTypeService. The orchestration rules (not-found raising, selection
// checking) are written against this interface so they can be tested apart
// from the concrete repositories.
type MaterialTypeStore interface {
	GetAllMaterials(ctx context.Context) ([]catalog.MaterialTypeView, error)
	GetMaterialTypesAsSelectListItem(ctx context.Context, categoryID *int64) ([]shared.SelectListItem, error)
	GetMaterialByID(ctx context.Context, id int64) (*catalog.MaterialTypeView, error)
	AddMaterial(ctx context.Context, view catalog.MaterialTypeView) (int64, error)
	UpdateMaterialType(ctx context.Context, view catalog.MaterialTypeView) (bool, error)
	RemoveMaterialType(ctx context.Context, id int64) (bool, error)
}

// materialTypeStore adapts the read/write repository pair to the store seam
type materialTypeStore struct {
	reader catalog.MaterialTypeReader
	writer catalog.MaterialTypeWriter
}

// NewMaterialTypeStore builds the default store over the repository pair
func NewMaterialTypeStore(reader catalog.MaterialTypeReader, writer catalog.MaterialTypeWriter) MaterialTypeStore {
	return &materialTypeStore{reader: reader, writer: writer}
}

func (s *materialTypeStore) GetAllMaterials(ctx context.Context) ([]catalog.MaterialTypeView, error) {
	return s.reader.GetAllMaterialTypes(ctx)
}

func (s *materialTypeStore) GetMaterialTypesAsSelectListItem(ctx context.Context, categoryID *int64) ([]shared.SelectListItem, error) {
	return s.reader.GetMaterialTypesAsSelectListItem(ctx, categoryID)
}

func (s *materialTypeStore) GetMaterialByID(ctx context.Context, id int64) (*catalog.MaterialTypeView, error) {
	return s.reader.GetMaterialTypeByID(ctx, id)
}

func (s *materialTypeStore) AddMaterial(ctx context.Context, view catalog.MaterialTypeView) (int64, error) {
	return s.writer.AddMaterialType(ctx, view)
}

func (s *materialTypeStore) UpdateMaterialType(ctx context.Context, view catalog.MaterialTypeView) (bool, error) {
	return s.writer.UpdateMaterialType(ctx, view)
}

func (s *materialTypeStore) RemoveMaterialType(ctx context.Context, id int64) (bool, error) {
	return s.writer.RemoveMaterialType(ctx, id)
}

// MaterialTypeService orchestrates material type operations over an injected
// store. The store is a constructor dependency; there is no default
// construction.
type MaterialTypeService struct {
	store  MaterialTypeStore
	logger *zap.Logger
}

// NewMaterialTypeService creates a new MaterialTypeService
func NewMaterialTypeService(store MaterialTypeStore, logger *zap.Logger) *MaterialTypeService {
	return &MaterialTypeService{
		store:  store,
		logger: logger,
	}
}

// GetAllMaterialTypes returns every material type, or not-found when there are none
func (s *MaterialTypeService) GetAllMaterialTypes(ctx context.Context) ([]catalog.MaterialTypeView, error) {
	materialTypes, err := s.store.GetAllMaterials(ctx)
	if err != nil {
		return nil, err
	}
	if len(materialTypes) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return materialTypes, nil
}

// GetMaterialTypesAsSelectListItem renders material types as choosable
// options. An empty list is not-found; a non-empty list where nothing is
// selected violates the selection rule and raises ErrNoSelection.
func (s *MaterialTypeService) GetMaterialTypesAsSelectListItem(ctx context.Context, categoryID *int64) ([]shared.SelectListItem, error) {
	materialTypes, err := s.store.GetMaterialTypesAsSelectListItem(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(materialTypes) == 0 {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}

	anySelected := false
	for _, item := range materialTypes {
		if item.Selected {
			anySelected = true
			break
		}
	}
	if !anySelected {
		s.logger.Error(shared.ErrNoSelection.Message)
		return nil, shared.ErrNoSelection
	}

	return materialTypes, nil
}

// GetMaterialTypeByID returns one material type, or not-found when absent
func (s *MaterialTypeService) GetMaterialTypeByID(ctx context.Context, id int64) (*catalog.MaterialTypeView, error) {
	materialType, err := s.store.GetMaterialByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if materialType == nil {
		s.logger.Error(shared.ErrNotFound.Message)
		return nil, shared.ErrNotFound
	}
	return materialType, nil
}

// AddMaterialType inserts a material type and reports the outcome
func (s *MaterialTypeService) AddMaterialType(ctx context.Context, view catalog.MaterialTypeView) (shared.ServiceResult, error) {
	id, err := s.store.AddMaterial(ctx, view)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	result := shared.ServiceResult{ID: id}
	if id < 0 {
		result.SetFailure("Error while inserting material.")
	} else {
		result.SetSuccess("Material added successfully.")
	}
	return result, nil
}

// UpdateLibrary updates a material type and reports the outcome
func (s *MaterialTypeService) UpdateLibrary(ctx context.Context, view catalog.MaterialTypeView) (shared.ServiceResult, error) {
	updated, err := s.store.UpdateMaterialType(ctx, view)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	var result shared.ServiceResult
	if !updated {
		result.SetFailure("Error while updating material.")
	} else {
		result.SetSuccess("Material updated successfully.")
	}
	return result, nil
}

// RemoveLibrary removes a material type and reports the outcome
func (s *MaterialTypeService) RemoveLibrary(ctx context.Context, id int64) (shared.ServiceResult, error) {
	removed, err := s.store.RemoveMaterialType(ctx, id)
	if err != nil {
		return shared.ServiceResult{}, err
	}

	var result shared.ServiceResult
	if !removed {
		result.SetFailure("Error while deleting material.")
	} else {
		result.SetSuccess("Material deleted successfully.")
	}
	return result, nil
}
