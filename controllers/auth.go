package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"LifeCarePortal/models"
	"LifeCarePortal/services"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

func Auth(router *gin.Engine, h *Handler) {
	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterForm)
	router.POST("/register", h.Register)
	router.POST("/logout", h.Logout)
}

func (h *Handler) LoginForm(c *gin.Context) {
	page := services.NewLoginPage(h.Backend, h.Guard, session.From(c))
	render(c, http.StatusOK, "login.html", "Login", page, nil)
}

func (h *Handler) Login(c *gin.Context) {
	page := services.NewLoginPage(h.Backend, h.Guard, session.From(c))
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		log.Println("Error from binding login form:", err)
		page.Error = utils.LOGIN_FAILED
		render(c, http.StatusBadRequest, "login.html", "Login", page, nil)
		return
	}
	if err := page.Submit(c.Request.Context(), creds); err != nil {
		render(c, http.StatusBadRequest, "login.html", "Login", page, nil)
		return
	}
	redirect(c, "/")
}

func (h *Handler) RegisterForm(c *gin.Context) {
	page := services.NewRegisterPage(h.Backend, h.Guard, session.From(c))
	render(c, http.StatusOK, "register.html", "Register", page, nil)
}

func (h *Handler) Register(c *gin.Context) {
	page := services.NewRegisterPage(h.Backend, h.Guard, session.From(c))
	var reg models.Registration
	if err := c.ShouldBind(&reg); err != nil {
		log.Println("Error from binding register form:", err)
		page.Error = utils.REGISTRATION_FAILED
		render(c, http.StatusBadRequest, "register.html", "Register", page, nil)
		return
	}
	if err := page.Submit(c.Request.Context(), reg); err != nil {
		render(c, http.StatusBadRequest, "register.html", "Register", page, nil)
		return
	}
	redirect(c, "/login")
}

func (h *Handler) Logout(c *gin.Context) {
	services.Logout(session.From(c))
	redirect(c, "/")
}
