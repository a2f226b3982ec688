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

func Appointment(router *gin.Engine, h *Handler) {
	router.GET("/appointments", h.AppointmentPage)
	router.POST("/appointments", h.BookAppointment)
}

func (h *Handler) bookingPage(c *gin.Context) *services.BookingPage {
	return services.NewBookingPage(h.Backend.Providers(), h.Backend.Appointments(), h.Guard, session.From(c))
}

func (h *Handler) AppointmentPage(c *gin.Context) {
	page := h.bookingPage(c)
	_ = page.Load(c.Request.Context())
	render(c, http.StatusOK, "appointments.html", "Appointments", page, nil)
}

/*
* Book the appointment
* On success go on to payments, the session remembers the new id
* On failure re-render the form with the provider list
 */
func (h *Handler) BookAppointment(c *gin.Context) {
	page := h.bookingPage(c)
	var draft models.Appointment
	if err := c.ShouldBind(&draft); err != nil {
		log.Println("Error from binding appointment form:", err)
		_ = page.Load(c.Request.Context())
		page.Error = utils.BOOKING_FAILED
		render(c, http.StatusBadRequest, "appointments.html", "Appointments", page, nil)
		return
	}
	if _, err := page.Book(c.Request.Context(), draft); err != nil {
		message := page.Error
		_ = page.Load(c.Request.Context())
		page.Error = message
		render(c, http.StatusBadRequest, "appointments.html", "Appointments", page, nil)
		return
	}
	redirect(c, "/payments")
}
