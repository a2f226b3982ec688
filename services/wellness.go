package services

import (
	"LifeCarePortal/models"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

type WellnessPage = ResourcePage[models.WellnessService]

var wellnessOptions = &PageOptions[models.WellnessService]{
	Name:     "wellness",
	Defaults: func() models.WellnessService { return models.WellnessService{} },
	IDOf:     func(s models.WellnessService) models.ID { return s.ID },
	ForEdit: func(s models.WellnessService) models.WellnessService {
		s.ID = ""
		return s
	},
	Required:       utils.ALL_FIELDS_REQUIRED,
	LoadFailed:     utils.FAILED_TO_LOAD_SERVICES,
	SaveFailed:     utils.FAILED_TO_SAVE_SERVICE,
	DeleteFailed:   utils.FAILED_TO_DELETE_SERVICE,
	Created:        utils.SERVICE_CREATED,
	Updated:        utils.SERVICE_UPDATED,
	Deleted:        utils.SERVICE_DELETED,
	SurfaceBackend: true,
	ConfirmDelete:  true,
}

func NewWellnessPage(api Resource[models.WellnessService], guard *Submission, sess *session.Session) *WellnessPage {
	return NewResourcePage(wellnessOptions, api, guard, sess)
}
