package role

import (
	"errors"
	"strings"
)

type Role string

const (
	Patient          Role = "PATIENT"
	Doctor           Role = "DOCTOR"
	WellnessProvider Role = "WELLNESS_PROVIDER"
	Admin            Role = "ADMIN"
)

var ErrUnknownRole = errors.New("unknown role")

// Option is one entry of the role dropdown on the register page.
type Option struct {
	Code  Role
	Label string
}

func All() []Option {
	return []Option{
		{Code: Patient, Label: "Patient"},
		{Code: Doctor, Label: "Doctor"},
		{Code: WellnessProvider, Label: "Wellness Provider"},
		{Code: Admin, Label: "Admin"},
	}
}

func (r Role) Valid() bool {
	for _, o := range All() {
		if o.Code == r {
			return true
		}
	}
	return false
}

/*
* Normalise the incoming value to upper case
* Reject anything outside the four known roles
 */
func Parse(value string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(value)))
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}
