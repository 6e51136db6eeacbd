package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	identityapp "github.com/mediastorage/backend/internal/application/identity"
	"github.com/mediastorage/backend/internal/domain/shared"
	"github.com/mediastorage/backend/internal/infrastructure/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	userService *identityapp.UserService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService *identityapp.UserService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated identity
type LoginResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRoutes registers authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

// Login authenticates a user and issues an access token. A credential miss
// is reported as unauthorized, never revealing which part was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Login(c.Request.Context(), identityapp.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.Unauthorized(c, "Invalid username or password")
			return
		}
		h.HandleError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		UserID:      user.ID.String(),
		Username:    user.Username,
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}
