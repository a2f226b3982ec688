package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LifeCarePortal/client"
)

func TestExportPayments(t *testing.T) {
	f := newFixture(t)
	f.backend.Seed(client.PaymentsPath, map[string]interface{}{
		"patientName": "Asha", "amount": 120.5, "paymentDate": "2025-01-10", "status": "Pending",
	})

	var buf bytes.Buffer
	require.NoError(t, ExportPayments(context.Background(), f.api.Payments(), "", &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Patient Name", file.GetCellValue(PaymentsSheet, "B1"))
	assert.Equal(t, "Asha", file.GetCellValue(PaymentsSheet, "B2"))
	assert.Equal(t, "Pending", file.GetCellValue(PaymentsSheet, "E2"))
}

func TestExportEnrollments(t *testing.T) {
	f := newFixture(t)
	f.backend.Seed(client.EnrollmentsPath, map[string]interface{}{
		"patientName": "Asha", "programName": "Yoga", "enrollmentDate": "2025-01-10", "status": "Active",
	})

	var buf bytes.Buffer
	require.NoError(t, ExportEnrollments(context.Background(), f.api.Enrollments(), "", &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Yoga", file.GetCellValue(EnrollmentsSheet, "C2"))
	assert.Equal(t, "Active", file.GetCellValue(EnrollmentsSheet, "E2"))
}
