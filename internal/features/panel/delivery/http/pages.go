package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"bot-admin-panel/internal/common/logger"
	"bot-admin-panel/internal/common/middleware"
)

func (h *PanelHandler) registerPages(router *gin.Engine) {
	router.GET("/", h.root)
	router.GET("/admin", h.adminRoot)
	router.GET("/favicon.ico", h.favicon)
	router.GET("/admin/api/themes", h.themes)

	router.GET("/admin/users", h.page("users"))
	router.GET("/admin/logs", h.page("logs"))
	router.GET("/admin/broadcast", h.page("broadcast"))
	router.GET("/admin/groups", h.page("groups"))
	router.GET("/admin/plugins", h.page("plugins"))
	router.GET("/admin/info", h.page("info"))
	router.GET("/admin/modules", h.page("modules"))
	router.GET("/admin/referrals", h.page("referrals"))
}

func (h *PanelHandler) root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin")
}

func (h *PanelHandler) adminRoot(c *gin.Context) {
	if _, ok := middleware.SessionFrom(c); ok {
		c.Redirect(http.StatusFound, "/admin/info")
		return
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *PanelHandler) favicon(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

func (h *PanelHandler) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name+".html", gin.H{"active_page": name})
	}
}

// themes lists the stems of the CSS files under static/css/themes.
func (h *PanelHandler) themes(c *gin.Context) {
	entries, err := os.ReadDir(filepath.Join(h.staticDir, "css", "themes"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read themes directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load themes"})
		return
	}

	themes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".css") {
			continue
		}
		themes = append(themes, strings.TrimSuffix(entry.Name(), ".css"))
	}
	c.JSON(http.StatusOK, themes)
}
