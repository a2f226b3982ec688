package models

type Appointment struct {
	ID         ID     `json:"id,omitempty" form:"-"`
	ProviderID ID     `json:"providerId" form:"providerId" validate:"required"`
	Date       string `json:"date" form:"date" validate:"required"`
	Time       string `json:"time" form:"time" validate:"required"`
	Notes      string `json:"notes" form:"notes"`
	Status     string `json:"status,omitempty" form:"-"`
}
