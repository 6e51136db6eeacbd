package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/mediastorage/backend/internal/application/catalog"
	"github.com/mediastorage/backend/internal/domain/catalog"
)

// LibraryHandler handles library API endpoints
type LibraryHandler struct {
	BaseHandler
	libraryService *catalogapp.LibraryService
}

// NewLibraryHandler creates a new LibraryHandler
func NewLibraryHandler(libraryService *catalogapp.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

// LibraryRequest represents a request to create or update a library
type LibraryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// RegisterRoutes registers library routes
func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	libraries := rg.Group("/libraries")
	{
		libraries.GET("", h.List)
		libraries.GET("/select-list", h.SelectList)
		libraries.GET("/:id", h.Get)
		libraries.POST("", h.Create)
		libraries.PUT("/:id", h.Update)
		libraries.DELETE("/:id", h.Delete)
	}
}

// List returns all libraries
func (h *LibraryHandler) List(c *gin.Context) {
	libraries, err := h.libraryService.GetAllLibraries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, libraries)
}

// SelectList returns all libraries as select list items, selecting the one
// that owns the department given in the department_id query parameter
func (h *LibraryHandler) SelectList(c *gin.Context) {
	departmentID, err := parseOptionalIDQuery(c, "department_id")
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	var id int64
	if departmentID != nil {
		id = *departmentID
	}

	items, err := h.libraryService.GetLibrariesAsSelectListItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns a single library by ID
func (h *LibraryHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid library ID")
		return
	}

	library, err := h.libraryService.GetLibraryByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, library)
}

// Create adds a new library
func (h *LibraryHandler) Create(c *gin.Context) {
	var req LibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.libraryService.AddLibrary(c.Request.Context(), catalog.LibraryView{Name: req.Name})
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

// Update renames a library
func (h *LibraryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid library ID")
		return
	}

	var req LibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.libraryService.UpdateLibrary(c.Request.Context(), catalog.LibraryView{ID: id, Name: req.Name})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete removes a library and cascades to its departments
func (h *LibraryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid library ID")
		return
	}

	result, err := h.libraryService.RemoveLibrary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
