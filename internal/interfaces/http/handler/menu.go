package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/mediastorage/backend/internal/application/catalog"
)

// MenuServiceFactory builds a menu service scoped to one request, so each
// operation gets its own unit of work
type MenuServiceFactory func() *catalogapp.MenuService

// MenuHandler handles menu API endpoints
type MenuHandler struct {
	BaseHandler
	newMenuService MenuServiceFactory
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(factory MenuServiceFactory) *MenuHandler {
	return &MenuHandler{newMenuService: factory}
}

// MenuRequest represents a request to create or update a menu
type MenuRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// RegisterRoutes registers menu routes
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	menus := rg.Group("/menus")
	{
		menus.GET("", h.List)
		menus.GET("/select-list", h.SelectList)
		menus.GET("/:id", h.Get)
		menus.POST("", h.Create)
		menus.PUT("/:id", h.Update)
		menus.DELETE("/:id", h.Delete)
	}
}

// List returns all menus when the listing feature is enabled
func (h *MenuHandler) List(c *gin.Context) {
	menus, err := h.newMenuService().GetAllMenus(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, menus)
}

// SelectList returns all menus as select list items, selecting the menu that
// owns the item given in the item_id query parameter
func (h *MenuHandler) SelectList(c *gin.Context) {
	itemID, err := parseOptionalIDQuery(c, "item_id")
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	items, err := h.newMenuService().GetAllMenusBySelectListItem(c.Request.Context(), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns a single menu by ID
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid menu ID")
		return
	}

	menu, err := h.newMenuService().GetMenuByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if menu == nil {
		h.NotFound(c, "Menu not found")
		return
	}
	h.Success(c, menu)
}

// Create adds a new menu
func (h *MenuHandler) Create(c *gin.Context) {
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.newMenuService().AddMenu(c.Request.Context(), catalogapp.MenuView{
		Name:        req.Name,
		Description: req.Description,
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

// Update rewrites a menu
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid menu ID")
		return
	}

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.newMenuService().UpdateMenu(c.Request.Context(), catalogapp.MenuView{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete removes a menu; cascade=true removes its items first
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid menu ID")
		return
	}

	cascade := c.Query("cascade") == "true"

	result, err := h.newMenuService().RemoveMenu(c.Request.Context(), id, cascade)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
