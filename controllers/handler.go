package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"LifeCarePortal/client"
	"LifeCarePortal/role"
	"LifeCarePortal/services"
	"LifeCarePortal/session"
)

// Handler carries what every page handler needs. The session itself is
// per request and comes from the session middleware.
type Handler struct {
	Backend *client.Client
	Guard   *services.Submission
}

func NewHandler(backend *client.Client, guard *services.Submission) *Handler {
	return &Handler{Backend: backend, Guard: guard}
}

type nav struct {
	Authenticated bool
	Email         string
	Role          role.Role
}

func navFor(sess *session.Session) nav {
	return nav{
		Authenticated: sess.Authenticated(),
		Email:         sess.Identity.Email,
		Role:          sess.Identity.Role,
	}
}

func render(c *gin.Context, status int, name, title string, page interface{}, extra gin.H) {
	data := gin.H{
		"Title": title,
		"Nav":   navFor(session.From(c)),
		"Page":  page,
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, name, data)
}

func statusFor(err error) int {
	if err != nil {
		return http.StatusBadRequest
	}
	return http.StatusOK
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
