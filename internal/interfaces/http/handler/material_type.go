package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/mediastorage/backend/internal/application/catalog"
	"github.com/mediastorage/backend/internal/domain/catalog"
)

// MaterialTypeHandler handles material type API endpoints
type MaterialTypeHandler struct {
	BaseHandler
	materialTypeService *catalogapp.MaterialTypeService
}

// NewMaterialTypeHandler creates a new MaterialTypeHandler
func NewMaterialTypeHandler(materialTypeService *catalogapp.MaterialTypeService) *MaterialTypeHandler {
	return &MaterialTypeHandler{materialTypeService: materialTypeService}
}

// MaterialTypeRequest represents a request to create or update a material type
type MaterialTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// RegisterRoutes registers material type routes
func (h *MaterialTypeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	materialTypes := rg.Group("/material-types")
	{
		materialTypes.GET("", h.List)
		materialTypes.GET("/select-list", h.SelectList)
		materialTypes.GET("/:id", h.Get)
		materialTypes.POST("", h.Create)
		materialTypes.PUT("/:id", h.Update)
		materialTypes.DELETE("/:id", h.Delete)
	}
}

// List returns all material types
func (h *MaterialTypeHandler) List(c *gin.Context) {
	materialTypes, err := h.materialTypeService.GetAllMaterialTypes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, materialTypes)
}

// SelectList returns all material types as select list items, selecting the
// one whose id equals the category_id query parameter
func (h *MaterialTypeHandler) SelectList(c *gin.Context) {
	categoryID, err := parseOptionalIDQuery(c, "category_id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	items, err := h.materialTypeService.GetMaterialTypesAsSelectListItem(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns a single material type by ID
func (h *MaterialTypeHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid material type ID")
		return
	}

	materialType, err := h.materialTypeService.GetMaterialTypeByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, materialType)
}

// Create adds a new material type
func (h *MaterialTypeHandler) Create(c *gin.Context) {
	var req MaterialTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.materialTypeService.AddMaterialType(c.Request.Context(), catalog.MaterialTypeView{Name: req.Name})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !result.IsSuccessful {
		h.Success(c, result)
		return
	}
	h.Created(c, result)
}

// Update rewrites a material type
func (h *MaterialTypeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid material type ID")
		return
	}

	var req MaterialTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.materialTypeService.UpdateLibrary(c.Request.Context(), catalog.MaterialTypeView{ID: id, Name: req.Name})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete removes a material type
func (h *MaterialTypeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid material type ID")
		return
	}

	result, err := h.materialTypeService.RemoveLibrary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
