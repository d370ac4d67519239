// Package cookie manages the HttpOnly cookie that ties a browser to its registration flow.
package cookie

import (
	"net/http"
	"time"

	"guestlink/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	FlowCookieName = "registration_flow"
	// the cookie is only needed by the flow endpoints
	FlowCookiePath = "/api/registration-flow"
)

func SetFlowCookie(c *gin.Context, cfg config.CookieConfig, flowID string, ttl time.Duration) {
	setFlowCookie(c, cfg, flowID, int(ttl.Seconds()))
}

func ClearFlowCookie(c *gin.Context, cfg config.CookieConfig) {
	setFlowCookie(c, cfg, "", -1)
}

func GetFlowID(c *gin.Context) string {
	id, _ := c.Cookie(FlowCookieName)
	return id
}

func setFlowCookie(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(FlowCookieName, value, maxAge, FlowCookiePath, cfg.Domain, cfg.Secure, true)
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
