package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"LifeCarePortal/services"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ExportPayments(c *gin.Context) {
	var buf bytes.Buffer
	sess := session.From(c)
	if err := services.ExportPayments(c.Request.Context(), h.Backend.Payments(), sess.Token, &buf); err != nil {
		c.String(http.StatusBadGateway, utils.FAILED_TO_LOAD_LIST)
		return
	}
	sendWorkbook(c, "payments.xlsx", &buf)
}

func (h *Handler) ExportEnrollments(c *gin.Context) {
	var buf bytes.Buffer
	sess := session.From(c)
	if err := services.ExportEnrollments(c.Request.Context(), h.Backend.Enrollments(), sess.Token, &buf); err != nil {
		c.String(http.StatusBadGateway, utils.FAILED_TO_LOAD_LIST)
		return
	}
	sendWorkbook(c, "enrollments.xlsx", &buf)
}

func sendWorkbook(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
