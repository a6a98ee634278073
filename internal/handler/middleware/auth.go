package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shuttlesync/internal/handler/httperr"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/cookie"
	"shuttlesync/internal/usecase"
	"shuttlesync/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	cfg            config.AuthConfig
}

const (
	ctxUserIDKey = "user_id"
	ctxTokenKey  = "access_token"
)

var errAccessTokenRequired = httperr.Reason("access token required")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		cfg:            cfg,
	}
}

// RequireAuth accepts the access token from the login cookie or a bearer header.
// Rejections carry the login path so the client can redirect.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.AccessToken(c, m.cfg)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAccessTokenRequired, "Access token required", m.redirect())
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", m.redirect())
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

func (m *AuthMiddleware) redirect() gin.H {
	return gin.H{"redirect": m.cfg.LoginPath}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetSession returns the authenticated caller and the token to forward upstream.
func GetSession(c *gin.Context) (shared.Session, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return shared.Session{}, false
	}
	token, _ := c.Get(ctxTokenKey)
	raw, _ := token.(string)
	return shared.Session{UserID: userID, Token: raw}, true
}
