//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"guestlink/internal/handler/middleware"
	"guestlink/internal/pkg/config"
	"guestlink/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter() *gin.Engine {
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	r := httptest.NewTestRouter(logger.LoggingMiddleware(), middleware.ErrorHandler())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("生成したIDをヘッダーで返す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newLoggedRouter(), http.MethodGet, "/ping", nil, "")

		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("受け取ったIDを引き継ぐ", func(t *testing.T) {
		r := newLoggedRouter()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-123")
		rec := httptest.Serve(r, req)

		assert.Equal(t, "upstream-123", rec.Body.String())
		assert.Equal(t, "upstream-123", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestCustomRecovery(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := httptest.NewTestRouter(middleware.CustomRecovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.Contains(t, logs.String(), `"msg":"recovered from panic"`)
	assert.Contains(t, logs.String(), `"stack":[`, "スタックがログに含まれる")
	assert.Contains(t, logs.String(), "boom")
}
