package cookie

import (
	"github.com/gin-gonic/gin"

	"shuttlesync/internal/pkg/config"
)

// AccessToken returns the access token cookie set by the login app, or "" when
// cookie auth is disabled or the cookie is absent.
func AccessToken(c *gin.Context, cfg config.AuthConfig) string {
	if !cfg.AllowCookieAuth || cfg.CookieName == "" {
		return ""
	}
	token, err := c.Cookie(cfg.CookieName)
	if err != nil {
		return ""
	}
	return token
}
