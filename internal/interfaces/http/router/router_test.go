package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingRegistrar struct{}

func (pingRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func TestRouter_Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mounts registrars under the default version", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)
		r.Register(pingRegistrar{})
		r.Setup()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	})

	t.Run("honours a custom version prefix", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine, WithAPIVersion("v2"))
		r.Register(pingRegistrar{})
		r.Setup()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v2/ping", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
