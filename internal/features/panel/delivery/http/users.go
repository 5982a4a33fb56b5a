package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerUserRoutes(router *gin.Engine) {
	router.GET("/api/users", h.listUsers)
	router.GET("/api/users/:user_id", h.getUser)
	router.PUT("/api/users/:user_id/role", h.updateUserRole)
	router.POST("/api/users/:user_id/block", h.blockUser)
	router.POST("/api/users/:user_id/unblock", h.unblockUser)
	router.DELETE("/api/users/:user_id", h.deleteUser)
	router.POST("/api/users/:user_id/message", h.sendMessage)
}

func (h *PanelHandler) listUsers(c *gin.Context) {
	h.forward(c, http.MethodGet, withQuery(c, "/api/users"))
}

func (h *PanelHandler) getUser(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/users/"+c.Param("user_id"))
}

func (h *PanelHandler) updateUserRole(c *gin.Context) {
	userID := c.Param("user_id")
	h.audit.LogUserAction(h.displayName(c), "update_role", "user:"+userID, true, c.ClientIP())
	h.forwardJSON(c, http.MethodPut, "/api/users/"+userID+"/role")
}

func (h *PanelHandler) blockUser(c *gin.Context) {
	userID := c.Param("user_id")
	h.audit.LogUserAction(h.displayName(c), "block_user", "user:"+userID, true, c.ClientIP())
	h.forward(c, http.MethodPost, "/api/users/"+userID+"/block")
}

func (h *PanelHandler) unblockUser(c *gin.Context) {
	userID := c.Param("user_id")
	h.audit.LogUserAction(h.displayName(c), "unblock_user", "user:"+userID, true, c.ClientIP())
	h.forward(c, http.MethodPost, "/api/users/"+userID+"/unblock")
}

func (h *PanelHandler) deleteUser(c *gin.Context) {
	userID := c.Param("user_id")
	h.audit.LogUserAction(h.displayName(c), "delete_user", "user:"+userID, true, c.ClientIP())
	h.forward(c, http.MethodDelete, "/api/users/"+userID)
}

// sendMessage relays either a JSON body or a multipart form with attachments.
func (h *PanelHandler) sendMessage(c *gin.Context) {
	endpoint := "/api/users/" + c.Param("user_id") + "/message"
	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		h.forwardRaw(c, http.MethodPost, endpoint)
		return
	}
	h.forwardJSON(c, http.MethodPost, endpoint)
}
