package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/mediastorage/backend/internal/application/catalog"
	"github.com/mediastorage/backend/internal/domain/catalog"
)

// DepartmentHandler handles department API endpoints
type DepartmentHandler struct {
	BaseHandler
	departmentService *catalogapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *catalogapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// DepartmentRequest represents a request to create or update a department
type DepartmentRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	LibraryID int64  `json:"library_id" binding:"required"`
}

// RegisterRoutes registers department routes
func (h *DepartmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	departments := rg.Group("/departments")
	{
		departments.GET("", h.List)
		departments.GET("/by-library/:libraryId", h.ListByLibrary)
		departments.GET("/:id", h.Get)
		departments.POST("", h.Create)
		departments.PUT("/:id", h.Update)
		departments.DELETE("/:id", h.Delete)
	}
}

// List returns all departments with their library names
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentService.GetAllDepartments(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, departments)
}

// ListByLibrary returns the departments of one library
func (h *DepartmentHandler) ListByLibrary(c *gin.Context) {
	libraryID, err := parseIDParam(c, "libraryId")
	if err != nil {
		h.BadRequest(c, "Invalid library ID")
		return
	}

	departments, err := h.departmentService.GetDepartmentsByLibraryID(c.Request.Context(), libraryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, departments)
}

// Get returns a single department by ID
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	department, err := h.departmentService.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}

// Create adds a new department
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.departmentService.AddDepartment(c.Request.Context(), catalog.DepartmentView{
		Name:      req.Name,
		LibraryID: req.LibraryID,
	})
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

// Update rewrites a department
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.departmentService.UpdateDepartment(c.Request.Context(), catalog.DepartmentView{
		ID:        id,
		Name:      req.Name,
		LibraryID: req.LibraryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete removes a department
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	result, err := h.departmentService.RemoveDepartment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
