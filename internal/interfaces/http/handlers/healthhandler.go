package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corycamp/support-ticket-backend/internal/shared/version"
)

type HealthHandler struct {
	backend string
}

func NewHealthHandler(backend string) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// HealthCheck handles GET /health
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": h.backend,
		"version": version.String(),
	})
}
