package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/360EntSecGroup-Skylar/excelize"

	"LifeCarePortal/models"
)

const (
	PaymentsSheet    = "Payments"
	EnrollmentsSheet = "Enrollments"
)

var (
	paymentHeaders    = []string{"ID", "Patient Name", "Amount", "Payment Date", "Status"}
	enrollmentHeaders = []string{"ID", "Patient Name", "Program Name", "Enrollment Date", "Status"}
)

/*
* Fetch the current payments from the backend
* Write them as one xlsx sheet with a header row
 */
func ExportPayments(ctx context.Context, api Resource[models.Payment], token string, w io.Writer) error {
	items, err := api.List(ctx, token)
	if err != nil {
		log.Println("Error from exporting payments:", err)
		return err
	}
	rows := make([][]interface{}, 0, len(items))
	for _, p := range items {
		var amount interface{} = string(p.Amount)
		if f, err := p.Amount.Float(); err == nil {
			amount = f
		}
		rows = append(rows, []interface{}{p.ID.String(), p.PatientName, amount, p.PaymentDate, p.Status})
	}
	return writeSheet(w, PaymentsSheet, paymentHeaders, rows)
}

func ExportEnrollments(ctx context.Context, api Resource[models.Enrollment], token string, w io.Writer) error {
	items, err := api.List(ctx, token)
	if err != nil {
		log.Println("Error from exporting enrollments:", err)
		return err
	}
	rows := make([][]interface{}, 0, len(items))
	for _, e := range items {
		rows = append(rows, []interface{}{e.ID.String(), e.PatientName, e.ProgramName, e.EnrollmentDate, e.Status})
	}
	return writeSheet(w, EnrollmentsSheet, enrollmentHeaders, rows)
}

func writeSheet(w io.Writer, sheet string, headers []string, rows [][]interface{}) error {
	file := excelize.NewFile()
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	file.SetActiveSheet(file.GetSheetIndex(sheet))
	for col, h := range headers {
		file.SetCellValue(sheet, cell(col, 1), h)
	}
	for i, row := range rows {
		for col, v := range row {
			file.SetCellValue(sheet, cell(col, i+2), v)
		}
	}
	return file.Write(w)
}

func cell(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}
