package models

const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
)

type Payment struct {
	ID          ID     `json:"id,omitempty" form:"-"`
	PatientName string `json:"patientName" form:"patientName" validate:"required"`
	Amount      Number `json:"amount" form:"amount" validate:"required,numeric"`
	PaymentDate string `json:"paymentDate" form:"paymentDate" validate:"required"`
	Status      string `json:"status" form:"status" validate:"required,oneof=Pending Completed"`
}

func PaymentStatuses() []string {
	return []string{PaymentPending, PaymentCompleted}
}
