package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Welcome(router *gin.Engine, h *Handler) {
	router.GET("/", h.WelcomePage)
}

func (h *Handler) WelcomePage(c *gin.Context) {
	render(c, http.StatusOK, "welcome.html", "Welcome", nil, nil)
}
