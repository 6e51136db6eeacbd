package catalog

import (
	"context"

	"github.com/mediastorage/backend/internal/domain/shared"
)

// MaterialTypeView is the projection of a material type
type MaterialTypeView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MaterialTypeReader issues side-effect-free, view-projected queries
type MaterialTypeReader interface {
	GetAllMaterialTypes(ctx context.Context) ([]MaterialTypeView, error)

	// GetMaterialTypesAsSelectListItem renders every material type as a
	// choosable option, selected when its id equals the given category id.
	// A nil category id selects nothing.
	GetMaterialTypesAsSelectListItem(ctx context.Context, categoryID *int64) ([]shared.SelectListItem, error)

	GetMaterialTypeByID(ctx context.Context, id int64) (*MaterialTypeView, error)
}

// MaterialTypeWriter mutates material types, one transaction per call
type MaterialTypeWriter interface {
	AddMaterialType(ctx context.Context, view MaterialTypeView) (int64, error)
	UpdateMaterialType(ctx context.Context, view MaterialTypeView) (bool, error)
	RemoveMaterialType(ctx context.Context, id int64) (bool, error)
}
