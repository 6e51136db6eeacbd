package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mediastorage/backend/internal/infrastructure/persistence"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}

// Health reports process liveness
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{"status": "ok"})
}

// Ready reports whether the database is reachable
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		h.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database is not reachable")
		return
	}
	h.Success(c, gin.H{"status": "ready"})
}
