package services

import (
	"LifeCarePortal/models"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

type PaymentPage = ResourcePage[models.Payment]

var paymentOptions = &PageOptions[models.Payment]{
	Name: "payments",
	Defaults: func() models.Payment {
		return models.Payment{Status: models.PaymentPending}
	},
	IDOf: func(p models.Payment) models.ID { return p.ID },
	ForEdit: func(p models.Payment) models.Payment {
		p.ID = ""
		return p
	},
	Required:       utils.ALL_FIELDS_REQUIRED,
	LoadFailed:     utils.FAILED_TO_LOAD_LIST,
	SaveFailed:     utils.SUBMISSION_FAILED,
	DeleteFailed:   utils.FAILED_TO_DELETE,
	SurfaceBackend: true,
}

func NewPaymentPage(api Resource[models.Payment], guard *Submission, sess *session.Session) *PaymentPage {
	return NewResourcePage(paymentOptions, api, guard, sess)
}
