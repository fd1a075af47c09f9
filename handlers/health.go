package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// HomeHandler is the liveness probe
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Always {\"hello\": \"World\"}"
// @Router       / [get]
func (h *Handlers) HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hello": "World"})
}

// HealthHandler reports configuration and local dependency status
// @Summary      Health check
// @Description  Reports the generation endpoint and model in use, whether the output directory exists, and PostgreSQL connectivity when configured
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service health status"
// @Failure      503  {object}  map[string]string  "Output directory missing"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":          "healthy",
		"remote_endpoint": h.aiService.Endpoint(),
		"model":           h.aiService.ModelName(),
		"output_dir":      h.writer.Dir(),
		"batch_policy":    string(h.batchPolicy),
		"postgres":        "not_configured",
	}
	httpStatus := http.StatusOK

	if info, err := os.Stat(h.writer.Dir()); err != nil || !info.IsDir() {
		status["status"] = "degraded"
		status["output_dir_error"] = "output directory is missing"
		httpStatus = http.StatusServiceUnavailable
	}

	if h.checker != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if h.checker.IsConnected(ctx) {
			status["postgres"] = "connected"
		} else {
			status["postgres"] = "unreachable"
		}
	}

	c.JSON(httpStatus, status)
}
