package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bot-admin-panel/internal/common/audit"
	"bot-admin-panel/internal/common/config"
	"bot-admin-panel/internal/features/auth/repository/memory"
	"bot-admin-panel/internal/features/auth/service"
)

func newAuditFixture(t *testing.T) (*gin.Engine, *bytes.Buffer, *bytes.Buffer, string) {
	t.Helper()

	auditCfg := config.AuditConfig{
		Enabled:        true,
		APICalls:       true,
		SecurityEvents: true,
	}
	var api, security bytes.Buffer
	recorder := audit.NewWithWriters(auditCfg, &bytes.Buffer{}, &api, &bytes.Buffer{}, &security)

	cfg := &config.Config{}
	cfg.Auth.AdminUsername = "admin"
	cfg.Auth.AdminPassword = "s3cret"
	cfg.Auth.SessionTTL = time.Hour
	svc := service.NewAuthService(cfg, memory.NewSessionStore(), noFacts{})

	result := svc.LoginBasic(context.Background(), "admin", "s3cret")
	require.True(t, result.Success)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestAudit(recorder, svc))
	router.GET("/api/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.GET("/boom", func(c *gin.Context) {
		panic("handler exploded")
	})

	return router, &api, &security, result.Token
}

func TestRequestAuditRecordsCall(t *testing.T) {
	router, api, _, token := newAuditFixture(t)

	w := get(router, "/api/users", token)
	assert.Equal(t, http.StatusOK, w.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(api.Bytes(), &record))
	assert.Equal(t, "/api/users", record["endpoint"])
	assert.Equal(t, "GET", record["method"])
	assert.Equal(t, "admin", record["username"])
	assert.Equal(t, float64(200), record["status"])
}

func TestRequestAuditAnonymousCall(t *testing.T) {
	router, api, _, _ := newAuditFixture(t)

	get(router, "/api/users", "")

	var record map[string]any
	require.NoError(t, json.Unmarshal(api.Bytes(), &record))
	_, hasUsername := record["username"]
	assert.False(t, hasUsername)
}

func TestRequestAuditSkipsStaticAssets(t *testing.T) {
	router, api, _, _ := newAuditFixture(t)

	get(router, "/static/css/app.css", "")
	get(router, "/favicon.ico", "")

	assert.Zero(t, api.Len())
}

func TestRequestAuditPanicBecomesSecurityEvent(t *testing.T) {
	router, api, security, token := newAuditFixture(t)

	w := get(router, "/boom", token)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "recovery still answers the request")

	var record map[string]any
	require.NoError(t, json.Unmarshal(security.Bytes(), &record))
	assert.Equal(t, "unhandled_exception", record["event"])
	assert.Equal(t, "HIGH", record["severity"])
	assert.Equal(t, "admin", record["username"])
	assert.Contains(t, record["details"], "handler exploded")
	assert.Contains(t, record["details"], "GET /boom")

	assert.Zero(t, api.Len(), "a panicked request produces no api call record")
}

func TestRequestIDMintedWhenAbsent(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoed(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
