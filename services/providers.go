package services

import (
	"LifeCarePortal/models"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

type ProviderPage = ResourcePage[models.Provider]

var providerOptions = &PageOptions[models.Provider]{
	Name:     "providers",
	Defaults: func() models.Provider { return models.Provider{} },
	IDOf:     func(p models.Provider) models.ID { return p.ID },
	// The stored password is never echoed back into the form.
	ForEdit: func(p models.Provider) models.Provider {
		p.ID = ""
		p.Password = ""
		return p
	},
	// A password is only needed to create a provider; an empty one on
	// update keeps the stored password.
	Check: func(p models.Provider, editing bool) error {
		if !editing && p.Password == "" {
			return ErrValidation
		}
		return nil
	},
	Required:       utils.ALL_FIELDS_REQUIRED,
	LoadFailed:     utils.FAILED_TO_LOAD_PROVIDERS,
	SaveFailed:     utils.SUBMISSION_FAILED,
	DeleteFailed:   utils.FAILED_TO_DELETE,
	SurfaceBackend: true,
}

func NewProviderPage(api Resource[models.Provider], guard *Submission, sess *session.Session) *ProviderPage {
	return NewResourcePage(providerOptions, api, guard, sess)
}
