package middleware

import (
	"errors"
	"net/http"
	"strings"

	"guestlink/internal/handler/httperr"
	"guestlink/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	FlowIDHeader = "X-Flow-ID"
	ctxFlowIDKey = "flow_id"
)

var (
	errFlowIDRequired = errors.New("flow id required")
	errFlowIDInvalid  = errors.New("flow id malformed")
)

type FlowMiddleware struct{}

func NewFlowMiddleware() *FlowMiddleware {
	return &FlowMiddleware{}
}

// RequireFlow resolves the flow ID from the flow cookie, then the X-Flow-ID header.
func (m *FlowMiddleware) RequireFlow() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := rawFlowID(c)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errFlowIDRequired, "Registration flow required", nil)
			return
		}

		flowID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusNotFound, errFlowIDInvalid, "Registration flow not found", nil)
			return
		}

		c.Set(ctxFlowIDKey, flowID)
		c.Next()
	}
}

func GetFlowID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxFlowIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func rawFlowID(c *gin.Context) string {
	if id := cookie.GetFlowID(c); id != "" {
		return id
	}
	return strings.TrimSpace(c.GetHeader(FlowIDHeader))
}
