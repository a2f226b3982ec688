package controllers

import (
	"github.com/gin-gonic/gin"

	"LifeCarePortal/models"
	"LifeCarePortal/services"
	"LifeCarePortal/session"
)

func Providers(router *gin.Engine, h *Handler) {
	registerResource(router, h, resourceRoutes[models.Provider]{
		path:     "/providers",
		template: "providers.html",
		title:    "Providers",
		newPage: func(h *Handler, sess *session.Session) *services.ProviderPage {
			return services.NewProviderPage(h.Backend.Providers(), h.Guard, sess)
		},
	})
}

func Wellness(router *gin.Engine, h *Handler) {
	registerResource(router, h, resourceRoutes[models.WellnessService]{
		path:     "/wellness",
		template: "wellness.html",
		title:    "Wellness Services",
		newPage: func(h *Handler, sess *session.Session) *services.WellnessPage {
			return services.NewWellnessPage(h.Backend.WellnessServices(), h.Guard, sess)
		},
	})
}

func Enrollments(router *gin.Engine, h *Handler) {
	registerResource(router, h, resourceRoutes[models.Enrollment]{
		path:     "/enrollments",
		template: "enrollments.html",
		title:    "Enrollments",
		newPage: func(h *Handler, sess *session.Session) *services.EnrollmentPage {
			return services.NewEnrollmentPage(h.Backend.Enrollments(), h.Guard, sess)
		},
		extra: func(*session.Session) gin.H {
			return gin.H{"Statuses": models.EnrollmentStatuses()}
		},
	})
	router.GET("/enrollments/export", h.ExportEnrollments)
}

func Payments(router *gin.Engine, h *Handler) {
	registerResource(router, h, resourceRoutes[models.Payment]{
		path:     "/payments",
		template: "payments.html",
		title:    "Payments",
		newPage: func(h *Handler, sess *session.Session) *services.PaymentPage {
			return services.NewPaymentPage(h.Backend.Payments(), h.Guard, sess)
		},
		extra: func(sess *session.Session) gin.H {
			return gin.H{
				"Statuses":      models.PaymentStatuses(),
				"AppointmentID": sess.AppointmentID,
			}
		},
	})
	router.GET("/payments/export", h.ExportPayments)
}
