package routes

import (
	"LifeCarePortal/controllers"
	"LifeCarePortal/session"
	"LifeCarePortal/templates"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, h *controllers.Handler, sessions *session.Manager) error {
	tmpl, err := templates.Load()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	r.Use(gzip.Gzip(gzip.BestSpeed))
	r.Use(sessions.Middleware())

	controllers.API(r, h)
	controllers.Welcome(r, h)
	controllers.Auth(r, h)
	controllers.Patient(r, h)
	controllers.Providers(r, h)
	controllers.Appointment(r, h)
	controllers.Wellness(r, h)
	controllers.Enrollments(r, h)
	controllers.Payments(r, h)
	return nil
}
