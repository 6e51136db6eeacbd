package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	identityapp "github.com/mediastorage/backend/internal/application/identity"
)

// UserHandler handles user API endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRequest represents a request to register a user
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1,max=255"`
	Mail     string `json:"mail" binding:"required,email"`
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.DELETE("/:id", h.Delete)
	}
}

// List returns all users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// Create registers a new user
func (h *UserHandler) Create(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.userService.AddUser(c.Request.Context(), identityapp.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Mail:     req.Mail,
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

// Delete logically removes a user
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	result, err := h.userService.RemoveUser(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
