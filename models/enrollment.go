package models

const (
	EnrollmentActive    = "Active"
	EnrollmentCompleted = "Completed"
	EnrollmentCancelled = "Cancelled"
)

type Enrollment struct {
	ID             ID     `json:"id,omitempty" form:"-"`
	PatientName    string `json:"patientName" form:"patientName" validate:"required"`
	ProgramName    string `json:"programName" form:"programName" validate:"required"`
	EnrollmentDate string `json:"enrollmentDate" form:"enrollmentDate" validate:"required"`
	Status         string `json:"status" form:"status" validate:"required,oneof=Active Completed Cancelled"`
}

func EnrollmentStatuses() []string {
	return []string{EnrollmentActive, EnrollmentCompleted, EnrollmentCancelled}
}
