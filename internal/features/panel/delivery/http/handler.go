// Package http holds the pass-through handlers of the admin panel: HTML pages
// and thin proxies relaying data operations to the bot API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bot-admin-panel/internal/common/audit"
	"bot-admin-panel/internal/common/middleware"
	"bot-admin-panel/internal/platform/botapi"
)

type PanelHandler struct {
	api       *botapi.Client
	audit     *audit.Recorder
	staticDir string
}

func NewPanelHandler(api *botapi.Client, recorder *audit.Recorder, staticDir string) *PanelHandler {
	return &PanelHandler{
		api:       api,
		audit:     recorder,
		staticDir: staticDir,
	}
}

func (h *PanelHandler) RegisterRoutes(router *gin.Engine) {
	h.registerPages(router)
	h.registerUserRoutes(router)
	h.registerGroupRoutes(router)
	h.registerBroadcastRoutes(router)
	h.registerPluginRoutes(router)
	h.registerModuleRoutes(router)
	h.registerReferralRoutes(router)
	h.registerLogRoutes(router)
	h.registerInfoRoutes(router)
}

// forward relays a bodyless request to the bot API and returns its payload.
func (h *PanelHandler) forward(c *gin.Context, method, endpoint string) {
	c.JSON(http.StatusOK, h.api.Request(c.Request.Context(), method, endpoint, nil))
}

// forwardJSON relays the request's JSON body unchanged.
func (h *PanelHandler) forwardJSON(c *gin.Context, method, endpoint string) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON body"})
		return
	}
	c.JSON(http.StatusOK, h.api.Request(c.Request.Context(), method, endpoint, payload))
}

// forwardRaw streams the body as-is, keeping the content type. Multipart
// uploads (broadcast attachments, plugin archives) go through here.
func (h *PanelHandler) forwardRaw(c *gin.Context, method, endpoint string) {
	contentType := c.GetHeader("Content-Type")
	c.JSON(http.StatusOK, h.api.RequestRaw(c.Request.Context(), method, endpoint, contentType, c.Request.Body))
}

// withQuery re-attaches the caller's query string to the proxied endpoint.
func withQuery(c *gin.Context, endpoint string) string {
	if q := c.Request.URL.RawQuery; q != "" {
		return endpoint + "?" + q
	}
	return endpoint
}

// displayName resolves the audited actor for user-action records.
func (h *PanelHandler) displayName(c *gin.Context) string {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return ""
	}
	return session.Identity.DisplayName()
}
