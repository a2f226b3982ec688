package services

import (
	"LifeCarePortal/models"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

type EnrollmentPage = ResourcePage[models.Enrollment]

var enrollmentOptions = &PageOptions[models.Enrollment]{
	Name: "enrollments",
	Defaults: func() models.Enrollment {
		return models.Enrollment{Status: models.EnrollmentActive}
	},
	IDOf: func(e models.Enrollment) models.ID { return e.ID },
	ForEdit: func(e models.Enrollment) models.Enrollment {
		e.ID = ""
		return e
	},
	Required:       utils.ALL_FIELDS_REQUIRED,
	LoadFailed:     utils.FAILED_TO_LOAD_LIST,
	SaveFailed:     utils.SUBMISSION_FAILED,
	DeleteFailed:   utils.FAILED_TO_DELETE,
	SurfaceBackend: true,
}

func NewEnrollmentPage(api Resource[models.Enrollment], guard *Submission, sess *session.Session) *EnrollmentPage {
	return NewResourcePage(enrollmentOptions, api, guard, sess)
}
