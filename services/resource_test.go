package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LifeCarePortal/client"
	"LifeCarePortal/models"
	"LifeCarePortal/utils"
)

func asha(status string) models.Enrollment {
	return models.Enrollment{PatientName: "Asha", ProgramName: "Yoga", EnrollmentDate: "2025-01-10", Status: status}
}

func TestEnrollmentCreateThenEditKeepsSameRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	page := NewEnrollmentPage(f.api.Enrollments(), f.guard, f.sess)
	assert.Equal(t, models.EnrollmentActive, page.Form.Status)

	require.NoError(t, page.Submit(ctx, asha(models.EnrollmentActive)))
	require.Len(t, page.Items, 1)
	id := page.Items[0].ID
	assert.Equal(t, "Active", page.Items[0].Status)
	assert.Equal(t, models.EnrollmentActive, page.Form.Status)
	assert.Empty(t, page.Form.PatientName)

	require.True(t, page.Edit(id))
	assert.True(t, page.Editing())
	assert.Equal(t, "Asha", page.Form.PatientName)

	require.NoError(t, page.Submit(ctx, asha(models.EnrollmentCompleted)))
	require.Len(t, page.Items, 1)
	assert.Equal(t, id, page.Items[0].ID)
	assert.Equal(t, "Completed", page.Items[0].Status)
	assert.False(t, page.Editing())
}

func TestEditIDSurvivesAcrossRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.backend.Seed(client.EnrollmentsPath, map[string]interface{}{
		"patientName": "Asha", "programName": "Yoga", "enrollmentDate": "2025-01-10", "status": "Active",
	})

	first := NewEnrollmentPage(f.api.Enrollments(), f.guard, f.sess)
	require.NoError(t, first.Load(ctx))
	require.True(t, first.Edit(id))

	second := NewEnrollmentPage(f.api.Enrollments(), f.guard, f.sess)
	assert.Equal(t, id, second.EditID)
	second.CancelEdit()

	third := NewEnrollmentPage(f.api.Enrollments(), f.guard, f.sess)
	assert.False(t, third.Editing())
}

func TestSubmitWithMissingFieldMakesNoCall(t *testing.T) {
	f := newFixture(t)
	page := NewPaymentPage(f.api.Payments(), f.guard, f.sess)

	draft := models.Payment{PatientName: "Asha", PaymentDate: "2025-01-10", Status: models.PaymentPending}
	err := page.Submit(context.Background(), draft)

	assert.True(t, IsValidation(err))
	assert.Equal(t, utils.ALL_FIELDS_REQUIRED, page.Error)
	assert.Equal(t, draft, page.Form)
	assert.Zero(t, f.backend.Calls())
}

func TestSubmitFailureKeepsDraftAndSurfacesBackendMessage(t *testing.T) {
	f := newFixture(t)
	f.backend.Fail(http.MethodPost, client.PaymentsPath, http.StatusBadRequest, "Amount too large")
	page := NewPaymentPage(f.api.Payments(), f.guard, f.sess)

	draft := models.Payment{PatientName: "Asha", Amount: "99999", PaymentDate: "2025-01-10", Status: models.PaymentPending}
	require.Error(t, page.Submit(context.Background(), draft))
	assert.Equal(t, "Amount too large", page.Error)
	assert.Equal(t, draft, page.Form)
	assert.Empty(t, page.Success)
}

func TestSubmitWhileInFlightIsRejected(t *testing.T) {
	f := newFixture(t)
	page := NewPaymentPage(f.api.Payments(), f.guard, f.sess)
	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = f.guard.Run(context.Background(), page.key("submit"), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started
	defer close(release)

	draft := models.Payment{PatientName: "Asha", Amount: "10", PaymentDate: "2025-01-10", Status: models.PaymentPending}
	err := page.Submit(context.Background(), draft)
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, utils.REQUEST_IN_PROGRESS, page.Error)
	assert.Zero(t, f.backend.Calls())
}

func TestRemoveReloadsEvenWhenDeleteFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.backend.Seed(client.PaymentsPath, map[string]interface{}{
		"patientName": "Asha", "amount": 10, "paymentDate": "2025-01-10", "status": "Pending",
	})
	page := NewPaymentPage(f.api.Payments(), f.guard, f.sess)

	f.backend.Fail(http.MethodDelete, client.PaymentsPath+"/:id", http.StatusInternalServerError, "")
	require.Error(t, page.Remove(ctx, id, false))
	assert.Equal(t, utils.FAILED_TO_DELETE, page.Error)
	require.Len(t, page.Items, 1)

	f.backend.ClearFailures()
	require.NoError(t, page.Remove(ctx, id, false))
	assert.Empty(t, page.Items)
	assert.Empty(t, page.Error)
}

func TestRemoveLeavesEditModeForRemovedItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.backend.Seed(client.EnrollmentsPath, map[string]interface{}{
		"patientName": "Asha", "programName": "Yoga", "enrollmentDate": "2025-01-10", "status": "Active",
	})
	page := NewEnrollmentPage(f.api.Enrollments(), f.guard, f.sess)
	require.NoError(t, page.Load(ctx))
	require.True(t, page.Edit(id))

	require.NoError(t, page.Remove(ctx, id, false))
	assert.False(t, page.Editing())
	assert.Empty(t, f.sess.View("enrollments").EditID)
}

func TestWellnessDeleteNeedsConfirmation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.backend.Seed(client.WellnessServicesPath, map[string]interface{}{
		"name": "Yoga", "description": "Morning yoga", "duration": "60 min", "fee": 25,
	})
	page := NewWellnessPage(f.api.WellnessServices(), f.guard, f.sess)

	require.NoError(t, page.Remove(ctx, id, false))
	assert.Equal(t, id, page.ConfirmID)
	assert.Len(t, f.backend.Items(client.WellnessServicesPath), 1)

	require.NoError(t, page.Remove(ctx, id, true))
	assert.Equal(t, utils.SERVICE_DELETED, page.Success)
	assert.Empty(t, f.backend.Items(client.WellnessServicesPath))
}

func TestWellnessSuccessMessages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	page := NewWellnessPage(f.api.WellnessServices(), f.guard, f.sess)

	svc := models.WellnessService{Name: "Yoga", Description: "Morning yoga", Duration: "60 min", Fee: "25"}
	require.NoError(t, page.Submit(ctx, svc))
	assert.Equal(t, utils.SERVICE_CREATED, page.Success)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.Number("25"), page.Items[0].Fee)

	require.True(t, page.Edit(page.Items[0].ID))
	svc.Fee = "30.5"
	require.NoError(t, page.Submit(ctx, svc))
	assert.Equal(t, utils.SERVICE_UPDATED, page.Success)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.Number("30.5"), page.Items[0].Fee)
}

func TestProviderPasswordRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	page := NewProviderPage(f.api.Providers(), f.guard, f.sess)

	p := models.Provider{Name: "Dr Rao", Email: "rao@x.com", Phone: "555", Specialization: "Cardiology"}
	assert.True(t, IsValidation(page.Submit(ctx, p)))
	assert.Zero(t, f.backend.Calls())

	p.Password = "secret"
	require.NoError(t, page.Submit(ctx, p))
	require.Len(t, page.Items, 1)

	require.True(t, page.Edit(page.Items[0].ID))
	assert.Empty(t, page.Form.Password)

	p.Password = ""
	p.Specialization = "Neurology"
	require.NoError(t, page.Submit(ctx, p))
	stored := f.backend.Items(client.ProvidersPath)
	require.Len(t, stored, 1)
	assert.Equal(t, "Neurology", stored[0]["specialization"])
	assert.Equal(t, "secret", stored[0]["password"])
}

func TestToggleListMakesNoCall(t *testing.T) {
	f := newFixture(t)
	page := NewProviderPage(f.api.Providers(), f.guard, f.sess)
	assert.False(t, page.ListVisible)

	page.ToggleList()
	assert.True(t, page.ListVisible)
	assert.True(t, NewProviderPage(f.api.Providers(), f.guard, f.sess).ListVisible)
	assert.Zero(t, f.backend.Calls())
}

func TestLoadFailureShowsFixedMessage(t *testing.T) {
	f := newFixture(t)
	f.backend.Fail(http.MethodGet, client.WellnessServicesPath, http.StatusBadRequest, "bad")
	page := NewWellnessPage(f.api.WellnessServices(), f.guard, f.sess)

	require.Error(t, page.Load(context.Background()))
	assert.Equal(t, utils.FAILED_TO_LOAD_SERVICES, page.Error)
}

func TestFlashShowsOnNextPageOnly(t *testing.T) {
	f := newFixture(t)
	page := NewProviderPage(f.api.Providers(), f.guard, f.sess)
	page.Success = utils.SERVICE_DELETED
	page.Flash()

	next := NewProviderPage(f.api.Providers(), f.guard, f.sess)
	assert.Equal(t, utils.SERVICE_DELETED, next.Success)
	assert.Empty(t, NewProviderPage(f.api.Providers(), f.guard, f.sess).Success)
}

func TestAskDeleteOnlyForListedItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.backend.Seed(client.WellnessServicesPath, map[string]interface{}{
		"name": "Yoga", "description": "Morning yoga", "duration": "60 min", "fee": 25,
	})
	page := NewWellnessPage(f.api.WellnessServices(), f.guard, f.sess)
	require.NoError(t, page.Load(ctx))

	page.AskDelete("99")
	assert.Empty(t, page.ConfirmID)
	page.AskDelete(id)
	assert.Equal(t, id, page.ConfirmID)
}
