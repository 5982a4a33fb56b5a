package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bot-admin-panel/internal/features/auth/models"
	"bot-admin-panel/internal/features/auth/service"
)

// SessionKey is the gin context key holding the authenticated session.
const SessionKey = "session"

// publicPrefixes bypass the auth check entirely: login surface, static
// assets, favicon, and the gateway's own liveness and metrics endpoints.
var publicPrefixes = []string{
	"/admin/login",
	"/admin/api/login",
	"/static/",
	"/favicon.ico",
	"/health",
	"/metrics",
}

// SessionGate authenticates every non-public request from the session cookie.
// With basic auth disabled system-wide, requests without a session pass
// through: external authentication (Telegram Mini-App context) is assumed.
func SessionGate(basicAuthEnabled bool, authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublicPath(path) {
			c.Next()
			return
		}

		if token, err := c.Cookie(models.SessionCookie); err == nil {
			if session, ok := authSvc.Authenticate(token); ok {
				c.Set(SessionKey, session)
				c.Next()
				return
			}
		}

		if !basicAuthEnabled {
			c.Next()
			return
		}

		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/admin/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionFrom returns the session the gate attached to the context, if any.
func SessionFrom(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok
}
