package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"guestlink/internal/handler/httperr"
	"guestlink/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error when a handler recorded one without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"path", routePath(c),
			"errors", c.Errors.String(),
		)
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

const recoveryStackLines = 24

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// the panic site is still on the stack here
				err := errs.New(fmt.Sprint(r))
				slog.Error("recovered from panic",
					"error", err.Error(),
					"request_id", GetRequestID(c),
					"flow_id", rawFlowID(c),
					"path", routePath(c),
					"stack", errs.ExtractStackLines(err, recoveryStackLines),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
