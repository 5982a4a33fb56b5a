package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bot-admin-panel/internal/common/audit"
	"bot-admin-panel/internal/features/auth/models"
	"bot-admin-panel/internal/features/auth/service"
)

type AuthHandler struct {
	service      service.AuthService
	audit        *audit.Recorder
	sessionTTL   time.Duration
	basicEnabled bool
}

func NewAuthHandler(svc service.AuthService, recorder *audit.Recorder, sessionTTL time.Duration, basicEnabled bool) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		audit:        recorder,
		sessionTTL:   sessionTTL,
		basicEnabled: basicEnabled,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/admin/login", h.loginPage)
	router.POST("/admin/api/login", h.login)
	router.POST("/admin/api/logout", h.logout)
}

// loginPage renders the login form, or sends an already authenticated caller
// on to the panel. The login path is on the public allow-list, so the session
// gate never resolves the cookie here; the handler checks it itself.
func (h *AuthHandler) loginPage(c *gin.Context) {
	if token, err := c.Cookie(models.SessionCookie); err == nil {
		if _, ok := h.service.Authenticate(token); ok {
			c.Redirect(http.StatusFound, "/admin/info")
			return
		}
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"basic_auth_disabled": !h.basicEnabled,
	})
}

// login handles both credential schemes. Credential failures are structured
// {success:false} payloads, never HTTP errors.
func (h *AuthHandler) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.LoginResponse{Success: false, Error: "Invalid request body"})
		return
	}

	ip := c.ClientIP()

	var result service.LoginResult
	var eventType, username string

	switch req.AuthType {
	case "telegram":
		eventType = "telegram_login"
		result = h.service.LoginTelegram(c.Request.Context(), req.InitData)
		if result.Profile != nil {
			username = result.Profile.Username
		}
	default:
		eventType = "basic_login"
		username = req.Username
		result = h.service.LoginBasic(c.Request.Context(), req.Username, req.Password)
	}

	h.audit.LogAuthEvent(eventType, username, result.Success, ip)

	if !result.Success {
		c.JSON(http.StatusOK, models.LoginResponse{Success: false, Error: result.Error})
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, models.LoginResponse{
		Success:  true,
		Redirect: result.Redirect,
		User:     result.Profile,
	})
}

// logout destroys the session and clears the cookie. Idempotent: a stale or
// missing token still succeeds.
func (h *AuthHandler) logout(c *gin.Context) {
	username := ""
	if token, err := c.Cookie(models.SessionCookie); err == nil {
		if session, ok := h.service.Authenticate(token); ok {
			username = h.service.DisplayName(session)
		}
		h.service.Logout(token)
	}

	h.audit.LogAuthEvent("logout", username, true, c.ClientIP())

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(models.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(models.SessionCookie, "", -1, "/", "", false, true)
}
