package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerLogRoutes(router *gin.Engine) {
	router.GET("/api/logs", h.listLogs)
	router.GET("/api/logs/:log_type", h.listLogsByType)
}

func (h *PanelHandler) listLogs(c *gin.Context) {
	h.forward(c, http.MethodGet, withQuery(c, "/api/logs"))
}

func (h *PanelHandler) listLogsByType(c *gin.Context) {
	h.forward(c, http.MethodGet, withQuery(c, "/api/logs/"+c.Param("log_type")))
}
