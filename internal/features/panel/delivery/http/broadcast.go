package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerBroadcastRoutes(router *gin.Engine) {
	router.POST("/api/broadcast", h.sendBroadcast)
	router.GET("/api/broadcast", h.listBroadcasts)
}

// sendBroadcast relays either a JSON body or a multipart form with media.
func (h *PanelHandler) sendBroadcast(c *gin.Context) {
	h.audit.LogUserAction(h.displayName(c), "send_broadcast", "", true, c.ClientIP())

	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		h.forwardRaw(c, http.MethodPost, "/api/broadcast")
		return
	}
	h.forwardJSON(c, http.MethodPost, "/api/broadcast")
}

func (h *PanelHandler) listBroadcasts(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/broadcast")
}
