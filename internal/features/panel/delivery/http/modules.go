package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerModuleRoutes(router *gin.Engine) {
	router.GET("/api/modules", h.listModules)
	router.GET("/api/modules/:module_name", h.getModule)
	router.POST("/api/modules/:module_name/enable", h.enableModule)
	router.POST("/api/modules/:module_name/disable", h.disableModule)
}

func (h *PanelHandler) listModules(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/modules")
}

func (h *PanelHandler) getModule(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/modules/"+c.Param("module_name"))
}

func (h *PanelHandler) enableModule(c *gin.Context) {
	module := c.Param("module_name")
	h.audit.LogUserAction(h.displayName(c), "enable_module", "module:"+module, true, c.ClientIP())
	h.forward(c, http.MethodPost, "/api/modules/"+module+"/enable")
}

func (h *PanelHandler) disableModule(c *gin.Context) {
	module := c.Param("module_name")
	h.audit.LogUserAction(h.displayName(c), "disable_module", "module:"+module, true, c.ClientIP())
	h.forward(c, http.MethodPost, "/api/modules/"+module+"/disable")
}
