package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LifeCarePortal/models"
	"LifeCarePortal/role"
)

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return signed
}

func TestSignInDerivesIdentityFromClaims(t *testing.T) {
	s := New(time.Hour)
	s.SignIn(token(t, jwt.MapClaims{"sub": "ravi@x.com", "role": "PATIENT", "patientId": float64(12)}), "")

	assert.True(t, s.Authenticated())
	assert.Equal(t, "ravi@x.com", s.Identity.Email)
	assert.Equal(t, role.Patient, s.Identity.Role)
	assert.Equal(t, models.ID("12"), s.Identity.PatientID)
}

func TestSignInExplicitPatientIDWins(t *testing.T) {
	s := New(time.Hour)
	s.SignIn(token(t, jwt.MapClaims{"sub": "a@x.com", "patientId": "3"}), "9")
	assert.Equal(t, models.ID("9"), s.PatientID())
}

func TestOpaqueTokenStillSignsIn(t *testing.T) {
	s := New(time.Hour)
	s.SignIn("not-a-jwt", "")
	assert.True(t, s.Authenticated())
	assert.Empty(t, s.Identity.Email)
	assert.Empty(t, s.PatientID())
}

func TestPatientIDRecoveredFromToken(t *testing.T) {
	s := New(time.Hour)
	s.Token = token(t, jwt.MapClaims{"sub": "ravi@x.com", "patientId": "44"})
	assert.Equal(t, models.ID("44"), s.PatientID())

	s.Token = token(t, jwt.MapClaims{"sub": "ravi@x.com"})
	assert.Empty(t, s.PatientID())
}

func TestSignOutClearsEverything(t *testing.T) {
	s := New(time.Hour)
	s.SignIn(token(t, jwt.MapClaims{"sub": "a@x.com"}), "5")
	s.AppointmentID = "77"
	s.SetView("providers", View{ListVisible: true})

	s.SignOut()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.PatientID())
	assert.Empty(t, s.AppointmentID)
	assert.Equal(t, View{}, s.View("providers"))
}

func TestExpired(t *testing.T) {
	s := New(time.Minute)
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(time.Now().Add(2*time.Minute)))
}

func TestMergeTakesOnlyChangedParts(t *testing.T) {
	stored := New(time.Hour)
	stored.SignIn("stored-token", "5")
	stored.SetView("providers", View{ListVisible: true})
	stored = stored.Clone()

	req := stored.Clone()
	req.Token = ""
	req.SetView("payments", View{EditID: "3"})
	req.SetAppointmentID("12")
	assert.True(t, req.Dirty())

	merged := stored.Merge(req)
	assert.Equal(t, "stored-token", merged.Token)
	assert.Equal(t, models.ID("12"), merged.AppointmentID)
	assert.True(t, merged.View("providers").ListVisible)
	assert.Equal(t, models.ID("3"), merged.View("payments").EditID)
	assert.False(t, merged.Dirty())
}

func TestMergeAppliesSignOut(t *testing.T) {
	stored := New(time.Hour)
	stored.SignIn("stored-token", "5")
	stored.SetAppointmentID("12")
	stored.SetView("providers", View{ListVisible: true})
	stored = stored.Clone()
	assert.False(t, stored.Dirty())

	req := stored.Clone()
	req.SignOut()
	merged := stored.Merge(req)
	assert.False(t, merged.Authenticated())
	assert.Empty(t, merged.AppointmentID)
	assert.Empty(t, merged.Views)
}
