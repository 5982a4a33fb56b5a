package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerInfoRoutes(router *gin.Engine) {
	router.GET("/api/health", h.healthCheck)
	router.GET("/api/statistics", h.statistics)
	router.GET("/api/bot/info", h.botInfo)
}

// healthCheck proxies the bot API's health endpoint; the gateway's own
// liveness is served separately on /health.
func (h *PanelHandler) healthCheck(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/health")
}

func (h *PanelHandler) statistics(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/statistics")
}

func (h *PanelHandler) botInfo(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/bot/info")
}
