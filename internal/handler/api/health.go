package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type FlowCounter interface {
	Len() int
}

type HealthHandler struct {
	db    Pinger
	flows FlowCounter
}

func NewHealthHandler(db Pinger, flows FlowCounter) *HealthHandler {
	return &HealthHandler{db: db, flows: flows}
}

// @Summary Health check
// @Description Reports database reachability and the number of live registration flows
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, dbStatus, code := "ok", "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, dbStatus, code = "degraded", "unreachable", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":       status,
		"database":     dbStatus,
		"active_flows": h.flows.Len(),
	})
}
