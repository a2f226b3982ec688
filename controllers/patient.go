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

func Patient(router *gin.Engine, h *Handler) {
	patient := router.Group("/patients")
	{
		patient.GET("", h.PatientPage)
		patient.POST("/register", h.RegisterPatient)
		patient.POST("/login", h.LoginPatient)
		patient.POST("/edit", h.EditPatient)
		patient.POST("/cancel", h.CancelPatient)
		patient.POST("/profile", h.SavePatientProfile)
		patient.POST("/records", h.SavePatientRecords)
	}
}

func (h *Handler) patientPage(c *gin.Context) *services.PatientPage {
	return services.NewPatientPage(h.Backend, h.Guard, session.From(c))
}

func renderPatient(c *gin.Context, status int, page *services.PatientPage) {
	render(c, status, "patients.html", "Patients", page, gin.H{"State": page.State().String()})
}

func (h *Handler) PatientPage(c *gin.Context) {
	page := h.patientPage(c)
	if tab := c.Query("tab"); tab != "" {
		page.SetTab(tab)
	}
	_ = page.Load(c.Request.Context())
	renderPatient(c, http.StatusOK, page)
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	page := h.patientPage(c)
	var reg models.PatientRegistration
	if err := c.ShouldBind(&reg); err != nil {
		log.Println("Error from binding patient register form:", err)
		page.Error = utils.PATIENT_REGISTRATION_FAILED
		renderPatient(c, http.StatusBadRequest, page)
		return
	}
	err := page.Register(c.Request.Context(), reg)
	renderPatient(c, statusFor(err), page)
}

func (h *Handler) LoginPatient(c *gin.Context) {
	page := h.patientPage(c)
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		log.Println("Error from binding patient login form:", err)
		page.Error = utils.PATIENT_LOGIN_FAILED
		renderPatient(c, http.StatusBadRequest, page)
		return
	}
	err := page.Login(c.Request.Context(), creds)
	renderPatient(c, statusFor(err), page)
}

func (h *Handler) EditPatient(c *gin.Context) {
	h.patientPage(c).ToggleEdit()
	redirect(c, "/patients")
}

func (h *Handler) CancelPatient(c *gin.Context) {
	page := h.patientPage(c)
	err := page.Cancel(c.Request.Context())
	renderPatient(c, statusFor(err), page)
}

// SavePatientProfile fetches the current values first so the record
// half of the page still renders next to the submitted draft.
func (h *Handler) SavePatientProfile(c *gin.Context) {
	page := h.patientPage(c)
	_ = page.Load(c.Request.Context())
	var draft models.Patient
	if err := c.ShouldBind(&draft); err != nil {
		log.Println("Error from binding patient profile form:", err)
		page.Error = utils.PROFILE_UPDATE_FAILED
		renderPatient(c, http.StatusBadRequest, page)
		return
	}
	err := page.SaveProfile(c.Request.Context(), draft)
	renderPatient(c, statusFor(err), page)
}

func (h *Handler) SavePatientRecords(c *gin.Context) {
	page := h.patientPage(c)
	_ = page.Load(c.Request.Context())
	var rec models.HealthRecord
	if err := c.ShouldBind(&rec); err != nil {
		log.Println("Error from binding health record form:", err)
		page.Error = utils.RECORDS_UPDATE_FAILED
		renderPatient(c, http.StatusBadRequest, page)
		return
	}
	err := page.SaveRecords(c.Request.Context(), rec.Records)
	renderPatient(c, statusFor(err), page)
}
