package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/banksajt/internal/server/http/dto"
)

// HealthHandler reports whether storage is reachable.
type HealthHandler struct {
	facade HealthFacade
	logger *slog.Logger
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(facade HealthFacade, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{facade: facade, logger: logger}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
