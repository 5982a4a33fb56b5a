package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *PanelHandler) registerReferralRoutes(router *gin.Engine) {
	router.GET("/api/referrals/:user_id", h.getUserReferrals)
	router.GET("/api/referrals/:user_id/history", h.getReferralHistory)
	router.POST("/api/referrals/:user_id/points/credit", h.creditPoints)
	router.POST("/api/referrals/:user_id/points/debit", h.debitPoints)
}

func (h *PanelHandler) getUserReferrals(c *gin.Context) {
	h.forward(c, http.MethodGet, "/api/referrals/"+c.Param("user_id"))
}

func (h *PanelHandler) getReferralHistory(c *gin.Context) {
	h.forward(c, http.MethodGet, withQuery(c, "/api/referrals/"+c.Param("user_id")+"/history"))
}

func (h *PanelHandler) creditPoints(c *gin.Context) {
	userID := c.Param("user_id")
	h.audit.LogUserAction(h.displayName(c), "credit_points", "user:"+userID, true, c.ClientIP())
	h.forwardJSON(c, http.MethodPost, "/api/referrals/"+userID+"/points/credit")
}

func (h *PanelHandler) debitPoints(c *gin.Context) {
	userID := c.Param("user_id")
	h.audit.LogUserAction(h.displayName(c), "debit_points", "user:"+userID, true, c.ClientIP())
	h.forwardJSON(c, http.MethodPost, "/api/referrals/"+userID+"/points/debit")
}
