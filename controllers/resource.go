package controllers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"LifeCarePortal/models"
	"LifeCarePortal/services"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

// resourceRoutes describes one CRUD page mounted under path.
type resourceRoutes[T any] struct {
	path     string
	template string
	title    string
	newPage  func(h *Handler, sess *session.Session) *services.ResourcePage[T]
	extra    func(sess *session.Session) gin.H
}

/*
* GET    path             list and blank form
* POST   path             create or update
* GET    path/edit/:id    form filled from the listed item
* POST   path/cancel      leave edit mode
* POST   path/delete/:id  delete, confirm=yes when the page asks first
*                         then redirect back to path
* POST   path/toggle      show or hide the list
 */
func registerResource[T any](router *gin.Engine, h *Handler, rr resourceRoutes[T]) {
	group := router.Group(rr.path)
	{
		group.GET("", func(c *gin.Context) { listResource(c, h, rr) })
		group.POST("", func(c *gin.Context) { submitResource(c, h, rr) })
		group.GET("/edit/:id", func(c *gin.Context) { editResource(c, h, rr) })
		group.POST("/cancel", func(c *gin.Context) { cancelResource(c, h, rr) })
		group.POST("/delete/:id", func(c *gin.Context) { deleteResource(c, h, rr) })
		group.POST("/toggle", func(c *gin.Context) { toggleResource(c, h, rr) })
	}
}

func (rr resourceRoutes[T]) render(c *gin.Context, status int, page *services.ResourcePage[T]) {
	var extra gin.H
	if rr.extra != nil {
		extra = rr.extra(session.From(c))
	}
	render(c, status, rr.template, rr.title, page, extra)
}

func listResource[T any](c *gin.Context, h *Handler, rr resourceRoutes[T]) {
	page := rr.newPage(h, session.From(c))
	if err := page.Load(c.Request.Context()); err == nil {
		page.AskDelete(models.ID(c.Query("confirm")))
	}
	rr.render(c, http.StatusOK, page)
}

func submitResource[T any](c *gin.Context, h *Handler, rr resourceRoutes[T]) {
	page := rr.newPage(h, session.From(c))
	var draft T
	if err := c.ShouldBind(&draft); err != nil {
		log.Println("Error from binding "+rr.path+" form:", err)
		_ = page.Load(c.Request.Context())
		page.Error = utils.SUBMISSION_FAILED
		rr.render(c, http.StatusBadRequest, page)
		return
	}
	err := page.Submit(c.Request.Context(), draft)
	if err != nil {
		message := page.Error
		_ = page.Load(c.Request.Context())
		page.Error = message
	}
	rr.render(c, statusFor(err), page)
}

func editResource[T any](c *gin.Context, h *Handler, rr resourceRoutes[T]) {
	page := rr.newPage(h, session.From(c))
	if err := page.Load(c.Request.Context()); err != nil {
		rr.render(c, http.StatusOK, page)
		return
	}
	if !page.Edit(models.ID(c.Param("id"))) {
		rr.render(c, http.StatusNotFound, page)
		return
	}
	rr.render(c, http.StatusOK, page)
}

func cancelResource[T any](c *gin.Context, h *Handler, rr resourceRoutes[T]) {
	rr.newPage(h, session.From(c)).CancelEdit()
	redirect(c, rr.path)
}

func deleteResource[T any](c *gin.Context, h *Handler, rr resourceRoutes[T]) {
	page := rr.newPage(h, session.From(c))
	_ = page.Remove(c.Request.Context(), models.ID(c.Param("id")), c.PostForm("confirm") == "yes")
	if page.ConfirmID != "" {
		redirect(c, rr.path+"?confirm="+url.QueryEscape(page.ConfirmID.String()))
		return
	}
	page.Flash()
	redirect(c, rr.path)
}

func toggleResource[T any](c *gin.Context, h *Handler, rr resourceRoutes[T]) {
	rr.newPage(h, session.From(c)).ToggleList()
	redirect(c, rr.path)
}
