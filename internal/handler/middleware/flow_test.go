//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"guestlink/internal/handler/middleware"
	"guestlink/internal/pkg/cookie"
	"guestlink/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newFlowRouter() *gin.Engine {
	r := httptest.NewTestRouter(middleware.ErrorHandler())
	r.GET("/flow", middleware.NewFlowMiddleware().RequireFlow(), func(c *gin.Context) {
		id, ok := middleware.GetFlowID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	})
	return r
}

func TestRequireFlow(t *testing.T) {
	cookieID := uuid.New()
	headerID := uuid.New()

	tests := []struct {
		name     string
		cookie   string
		header   string
		wantCode int
		wantID   string
	}{
		{name: "クッキーのみ", cookie: cookieID.String(), wantCode: http.StatusOK, wantID: cookieID.String()},
		{name: "ヘッダーのみ", header: headerID.String(), wantCode: http.StatusOK, wantID: headerID.String()},
		{name: "両方ある場合はクッキー優先", cookie: cookieID.String(), header: headerID.String(), wantCode: http.StatusOK, wantID: cookieID.String()},
		{name: "ヘッダーの空白は無視", header: "  " + headerID.String() + " ", wantCode: http.StatusOK, wantID: headerID.String()},
		{name: "IDなしは400", wantCode: http.StatusBadRequest},
		{name: "不正なIDは404", header: "12345", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cookies []*http.Cookie
			if tt.cookie != "" {
				cookies = append(cookies, &http.Cookie{Name: cookie.FlowCookieName, Value: tt.cookie})
			}

			rec := httptest.PerformRequestWithCookies(t, newFlowRouter(), http.MethodGet, "/flow", nil, cookies, tt.header)

			if tt.wantCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tt.wantCode, "Registration flow")
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tt.wantID, body["id"])
		})
	}
}
