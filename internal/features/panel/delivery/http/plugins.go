package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerPluginRoutes(router *gin.Engine) {
	router.GET("/admin/api/plugins", h.listPlugins)
	router.GET("/admin/api/plugins/available", h.availablePlugins)
	router.POST("/admin/api/plugins/upload", h.uploadPluginFile)
	router.POST("/admin/api/plugins/upload-url", h.uploadPluginURL)
	router.POST("/admin/api/plugins/upload-github", h.uploadPluginGithub)
	router.POST("/admin/api/plugins/:plugin_name/enable", h.enablePlugin)
	router.POST("/admin/api/plugins/:plugin_name/disable", h.disablePlugin)
	router.POST("/admin/api/plugins/:plugin_name/reload", h.reloadPlugin)
}

func (h *PanelHandler) listPlugins(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/plugins")
}

func (h *PanelHandler) availablePlugins(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/plugins/available")
}

func (h *PanelHandler) enablePlugin(c *gin.Context) {
	plugin := c.Param("plugin_name")
	h.audit.LogUserAction(h.displayName(c), "enable_plugin", "plugin:"+plugin, true, c.ClientIP())
	h.forward(c, http.MethodPost, "/api/plugins/"+plugin+"/enable")
}

func (h *PanelHandler) disablePlugin(c *gin.Context) {
	plugin := c.Param("plugin_name")
	h.audit.LogUserAction(h.displayName(c), "disable_plugin", "plugin:"+plugin, true, c.ClientIP())
	h.forward(c, http.MethodPost, "/api/plugins/"+plugin+"/disable")
}

func (h *PanelHandler) reloadPlugin(c *gin.Context) {
	h.forward(c, http.MethodPost, "/api/plugins/"+c.Param("plugin_name")+"/reload")
}

// uploadPluginFile relays the multipart archive unchanged.
func (h *PanelHandler) uploadPluginFile(c *gin.Context) {
	h.audit.LogUserAction(h.displayName(c), "upload_plugin", "", true, c.ClientIP())
	h.forwardRaw(c, http.MethodPost, "/api/plugins/upload")
}

func (h *PanelHandler) uploadPluginURL(c *gin.Context) {
	h.forwardJSON(c, http.MethodPost, "/api/plugins/upload-url")
}

func (h *PanelHandler) uploadPluginGithub(c *gin.Context) {
	h.forwardJSON(c, http.MethodPost, "/api/plugins/upload-github")
}
