package models

type Patient struct {
	ID       ID     `json:"id,omitempty" form:"-"`
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
	DOB      string `json:"dob" form:"dob"`
	Password string `json:"password,omitempty" form:"password"`
}

type PatientRegistration struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type PatientRegistered struct {
	ID ID `json:"id"`
}

// PatientLogin is what the patient login endpoint answers with.
type PatientLogin struct {
	Token     string `json:"token"`
	PatientID ID     `json:"patientId"`
}

type HealthRecord struct {
	Records string `json:"records" form:"records"`
}

type HealthRecordSaved struct {
	HealthRecords *string `json:"healthRecords"`
}
