package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/mediastorage/backend/internal/application/catalog"
)

// TagServiceFactory builds a tag service scoped to one request
type TagServiceFactory func() *catalogapp.TagService

// TagHandler handles tag API endpoints
type TagHandler struct {
	BaseHandler
	newTagService TagServiceFactory
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(factory TagServiceFactory) *TagHandler {
	return &TagHandler{newTagService: factory}
}

// TagRequest represents a request to create or update a tag
type TagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// RegisterRoutes registers tag routes
func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")
	{
		tags.GET("", h.List)
		tags.GET("/:id", h.Get)
		tags.POST("", h.Create)
		tags.PUT("/:id", h.Update)
		tags.DELETE("/:id", h.Delete)
	}
}

// List returns all tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.newTagService().GetAllTags(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tags)
}

// Get returns a single tag by ID
func (h *TagHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tag ID")
		return
	}

	tag, err := h.newTagService().GetTagByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if tag == nil {
		h.NotFound(c, "Tag not found")
		return
	}
	h.Success(c, tag)
}

// Create adds a new tag
func (h *TagHandler) Create(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.newTagService().AddTag(c.Request.Context(), catalogapp.TagView{Name: req.Name})
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

// Update rewrites a tag
func (h *TagHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tag ID")
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.newTagService().UpdateTag(c.Request.Context(), catalogapp.TagView{ID: id, Name: req.Name})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete removes a tag
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid tag ID")
		return
	}

	result, err := h.newTagService().RemoveTag(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
