package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bot-admin-panel/internal/common/audit"
	"bot-admin-panel/internal/features/auth/models"
	"bot-admin-panel/internal/features/auth/service"
)

// RequestAudit is the logging boundary around every request. It resolves the
// display identity from the session cookie, times the handler and records the
// call on the API audit channel. A panic below is recorded as a HIGH security
// event and re-raised so the recovery middleware still returns a server error.
// Static assets and the favicon are not audited.
func RequestAudit(recorder *audit.Recorder, authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static") || path == "/favicon.ico" {
			c.Next()
			return
		}

		method := c.Request.Method
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		displayName := ""
		if token, err := c.Cookie(models.SessionCookie); err == nil {
			if session, ok := authSvc.Authenticate(token); ok {
				displayName = authSvc.DisplayName(session)
			}
		}

		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				duration := time.Since(start)
				recorder.LogSecurityEvent(
					"unhandled_exception",
					audit.SeverityHigh,
					displayName,
					ip,
					fmt.Sprintf("%s %s (%.3fs): %v", method, path, duration.Seconds(), recovered),
				)
				panic(recovered)
			}
		}()

		c.Next()

		recorder.LogAPICall(path, method, displayName, c.Writer.Status(), ip, userAgent, time.Since(start))
	}
}
