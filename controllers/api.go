package controllers

import (
	"net/http"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"LifeCarePortal/session"
)

func API(router *gin.Engine, h *Handler) {
	api := router.Group("/api")
	{
		api.GET("/session", h.SessionInfo)
		api.GET("/healthz", h.Health)
	}
}

// SessionInfo reports who the browser is signed in as. The token never
// leaves the server.
func (h *Handler) SessionInfo(c *gin.Context) {
	sess := session.From(c)
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{
		"authenticated": sess.Authenticated(),
		"email":         sess.Identity.Email,
		"role":          sess.Identity.Role,
		"patientId":     sess.PatientID(),
		"appointmentId": sess.AppointmentID,
	}))
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.Backend.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("ok"))
}
