package services

import (
	"context"
	"log"

	"LifeCarePortal/models"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

const (
	TabRegister = "register"
	TabLogin    = "login"

	patientView = "patients"
)

type PatientState int

const (
	Unauthenticated PatientState = iota
	AuthenticatedNoProfile
	AuthenticatedWithProfile
)

func (s PatientState) String() string {
	switch s {
	case AuthenticatedNoProfile:
		return "authenticated-no-profile"
	case AuthenticatedWithProfile:
		return "authenticated-with-profile"
	default:
		return "unauthenticated"
	}
}

type PatientAPI interface {
	RegisterPatient(ctx context.Context, reg models.PatientRegistration) (models.ID, error)
	LoginPatient(ctx context.Context, creds models.Credentials) (models.PatientLogin, error)
	GetPatient(ctx context.Context, token string, id models.ID) (models.Patient, error)
	UpdatePatient(ctx context.Context, token string, id models.ID, p models.Patient) (models.Patient, error)
	GetHealthRecords(ctx context.Context, token string, patientID models.ID) (string, error)
	UpdateHealthRecords(ctx context.Context, token string, patientID models.ID, records string) (string, error)
}

// PatientPage is the combined register/login/profile/health-record view.
// Profile and Records hold the last values fetched from the backend;
// ProfileForm and RecordsForm are the drafts being edited.
type PatientPage struct {
	Tab          string
	EditMode     bool
	RegisterForm models.PatientRegistration
	LoginForm    models.Credentials
	Profile      models.Patient
	ProfileForm  models.Patient
	Records      string
	RecordsForm  string
	Fetched      bool
	Error        string
	Success      string

	api   PatientAPI
	guard *Submission
	sess  *session.Session
}

func NewPatientPage(api PatientAPI, guard *Submission, sess *session.Session) *PatientPage {
	view := sess.View(patientView)
	tab := view.Tab
	if tab != TabLogin {
		tab = TabRegister
	}
	return &PatientPage{
		Tab:      tab,
		EditMode: view.EditMode,
		api:      api,
		guard:    guard,
		sess:     sess,
	}
}

func (p *PatientPage) State() PatientState {
	switch {
	case !p.sess.Authenticated():
		return Unauthenticated
	case p.sess.PatientID() == "" || !p.Fetched:
		return AuthenticatedNoProfile
	default:
		return AuthenticatedWithProfile
	}
}

func (p *PatientPage) SetTab(tab string) {
	if tab != TabLogin {
		tab = TabRegister
	}
	p.Tab = tab
	p.persist()
}

/*
* Nothing to fetch without a token
* A token without a patient id asks for a fresh login and opens the
* login tab unless the visitor picked one
* Otherwise pull the profile and the health record
 */
func (p *PatientPage) Load(ctx context.Context) error {
	if !p.sess.Authenticated() {
		return nil
	}
	if p.sess.PatientID() == "" {
		p.Error = utils.PATIENT_RELOGIN_REQUIRED
		if p.sess.View(patientView).Tab == "" {
			p.Tab = TabLogin
		}
		return nil
	}
	return p.Refresh(ctx)
}

// Refresh replaces both the shown values and the drafts with the
// backend's copy.
func (p *PatientPage) Refresh(ctx context.Context) error {
	id := p.sess.PatientID()
	profile, err := p.api.GetPatient(ctx, p.sess.Token, id)
	if err != nil {
		log.Println("Error from fetching patient:", err)
		p.Error = utils.PATIENT_FETCH_FAILED
		p.Fetched = false
		return err
	}
	records, err := p.api.GetHealthRecords(ctx, p.sess.Token, id)
	if err != nil {
		log.Println("Error from fetching health records:", err)
		p.Error = utils.PATIENT_FETCH_FAILED
		p.Fetched = false
		return err
	}
	profile.Password = ""
	p.Profile = profile
	p.ProfileForm = profile
	p.Records = records
	p.RecordsForm = records
	p.Fetched = true
	return nil
}

func (p *PatientPage) Register(ctx context.Context, form models.PatientRegistration) error {
	p.RegisterForm = models.PatientRegistration{Name: form.Name, Email: form.Email}
	p.Error, p.Success = "", ""
	if err := Validate(form); err != nil {
		p.Error = utils.ALL_FIELDS_REQUIRED
		return err
	}

	var id models.ID
	err := p.guard.Run(ctx, p.key("register"), func(ctx context.Context) error {
		var err error
		id, err = p.api.RegisterPatient(ctx, form)
		return err
	})
	if err != nil {
		log.Println("Error from registering patient:", err)
		p.Error = Message(err, utils.PATIENT_REGISTRATION_FAILED, true)
		return err
	}

	p.sess.SetPatientID(id)
	p.LoginForm = models.Credentials{Email: form.Email}
	p.Success = utils.PATIENT_REGISTERED
	p.Tab = TabLogin
	p.persist()
	return nil
}

/*
* Log in with the patient endpoint
* Keep the token and the returned patient id in the session
* Then fetch the profile and the health record
 */
func (p *PatientPage) Login(ctx context.Context, creds models.Credentials) error {
	p.LoginForm = models.Credentials{Email: creds.Email}
	p.Error, p.Success = "", ""
	if err := Validate(creds); err != nil {
		p.Error = utils.ALL_FIELDS_REQUIRED
		return err
	}

	var res models.PatientLogin
	err := p.guard.Run(ctx, p.key("login"), func(ctx context.Context) error {
		var err error
		res, err = p.api.LoginPatient(ctx, creds)
		return err
	})
	if err != nil {
		log.Println("Error from patient login:", err)
		p.Error = Message(err, utils.PATIENT_LOGIN_FAILED, false)
		return err
	}

	p.sess.SignIn(res.Token, res.PatientID)
	p.Success = utils.PATIENT_LOGIN_SUCCESS
	p.persist()
	return p.Refresh(ctx)
}

func (p *PatientPage) ToggleEdit() {
	p.EditMode = !p.EditMode
	p.persist()
}

// Cancel leaves edit mode and throws the drafts away by refetching.
func (p *PatientPage) Cancel(ctx context.Context) error {
	p.EditMode = false
	p.persist()
	return p.Refresh(ctx)
}

func (p *PatientPage) SaveProfile(ctx context.Context, draft models.Patient) error {
	p.ProfileForm = draft
	p.Error, p.Success = "", ""
	id := p.sess.PatientID()
	if id == "" {
		p.Error = utils.PATIENT_RELOGIN_REQUIRED
		return ErrValidation
	}
	if err := Validate(draft); err != nil {
		p.Error = utils.ALL_FIELDS_REQUIRED
		return err
	}

	var updated models.Patient
	err := p.guard.Run(ctx, p.key("profile"), func(ctx context.Context) error {
		var err error
		updated, err = p.api.UpdatePatient(ctx, p.sess.Token, id, draft)
		return err
	})
	if err != nil {
		log.Println("Error from updating patient:", err)
		p.Error = Message(err, utils.PROFILE_UPDATE_FAILED, true)
		return err
	}

	updated.Password = ""
	p.Profile = updated
	p.ProfileForm = updated
	p.Fetched = true
	p.Success = utils.PROFILE_UPDATED
	p.EditMode = false
	p.persist()
	return nil
}

func (p *PatientPage) SaveRecords(ctx context.Context, records string) error {
	p.RecordsForm = records
	p.Error, p.Success = "", ""
	id := p.sess.PatientID()
	if id == "" {
		p.Error = utils.PATIENT_RELOGIN_REQUIRED
		return ErrValidation
	}

	var saved string
	err := p.guard.Run(ctx, p.key("records"), func(ctx context.Context) error {
		var err error
		saved, err = p.api.UpdateHealthRecords(ctx, p.sess.Token, id, records)
		return err
	})
	if err != nil {
		log.Println("Error from updating health records:", err)
		p.Error = Message(err, utils.RECORDS_UPDATE_FAILED, true)
		return err
	}

	p.Records = saved
	p.RecordsForm = saved
	p.Success = utils.RECORDS_UPDATED
	p.EditMode = false
	p.persist()
	return nil
}

func (p *PatientPage) persist() {
	view := p.sess.View(patientView)
	view.Tab = p.Tab
	view.EditMode = p.EditMode
	p.sess.SetView(patientView, view)
}

func (p *PatientPage) key(action string) string {
	return p.sess.ID + ":" + patientView + ":" + action
}
