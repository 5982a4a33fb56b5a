package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerGroupRoutes(router *gin.Engine) {
	router.GET("/api/groups", h.listGroups)
	router.POST("/api/groups", h.createGroup)
	router.GET("/api/groups/:group_name/members", h.groupMembers)
	router.POST("/api/groups/:group_name/users", h.addUserToGroup)
	router.DELETE("/api/groups/:group_name/users/:user_id", h.removeUserFromGroup)
	router.DELETE("/api/groups/:group_name", h.deleteGroup)
}

func (h *PanelHandler) listGroups(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/groups")
}

func (h *PanelHandler) createGroup(c *gin.Context) {
	h.audit.LogUserAction(h.displayName(c), "create_group", "", true, c.ClientIP())
	h.forwardJSON(c, http.MethodPost, "/api/groups")
}

func (h *PanelHandler) groupMembers(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/groups/"+c.Param("group_name")+"/members")
}

func (h *PanelHandler) addUserToGroup(c *gin.Context) {
	h.forwardJSON(c, http.MethodPost, "/api/groups/"+c.Param("group_name")+"/users")
}

func (h *PanelHandler) removeUserFromGroup(c *gin.Context) {
	h.forward(c, http.MethodDelete, "/api/groups/"+c.Param("group_name")+"/users/"+c.Param("user_id"))
}

func (h *PanelHandler) deleteGroup(c *gin.Context) {
	group := c.Param("group_name")
	h.audit.LogUserAction(h.displayName(c), "delete_group", "group:"+group, true, c.ClientIP())
	h.forward(c, http.MethodDelete, "/api/groups/"+group)
}
