package services

import (
	"context"
	"log"

	"LifeCarePortal/models"
	"LifeCarePortal/role"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, reg models.Registration) error
}

type LoginPage struct {
	Form  models.Credentials
	Error string

	api   AuthAPI
	guard *Submission
	sess  *session.Session
}

func NewLoginPage(api AuthAPI, guard *Submission, sess *session.Session) *LoginPage {
	return &LoginPage{api: api, guard: guard, sess: sess}
}

/*
* Validate the credentials before calling the backend
* Any failure, a missing token included, shows one generic message
* Only a successful login touches the session
 */
func (p *LoginPage) Submit(ctx context.Context, form models.Credentials) error {
	p.Form = models.Credentials{Email: form.Email}
	p.Error = ""
	if err := Validate(form); err != nil {
		p.Error = utils.ALL_FIELDS_REQUIRED
		return err
	}

	var token string
	err := p.guard.Run(ctx, p.sess.ID+":login", func(ctx context.Context) error {
		var err error
		token, err = p.api.Login(ctx, form)
		return err
	})
	if err != nil {
		log.Println("Error from login:", err)
		p.Error = Message(err, utils.LOGIN_FAILED, false)
		return err
	}
	p.sess.SignIn(token, "")
	return nil
}

type RegisterPage struct {
	Form  models.Registration
	Roles []role.Option
	Error string

	api   AuthAPI
	guard *Submission
	sess  *session.Session
}

func NewRegisterPage(api AuthAPI, guard *Submission, sess *session.Session) *RegisterPage {
	return &RegisterPage{
		Form:  models.Registration{Role: role.Patient},
		Roles: role.All(),
		api:   api,
		guard: guard,
		sess:  sess,
	}
}

func (p *RegisterPage) Submit(ctx context.Context, form models.Registration) error {
	p.Form = form
	p.Form.Password = ""
	p.Error = ""
	if err := Validate(form); err != nil {
		p.Error = utils.ALL_FIELDS_REQUIRED
		return err
	}

	err := p.guard.Run(ctx, p.sess.ID+":register", func(ctx context.Context) error {
		return p.api.Register(ctx, form)
	})
	if err != nil {
		log.Println("Error from register:", err)
		p.Error = Message(err, utils.REGISTRATION_FAILED, true)
		return err
	}
	return nil
}

func Logout(sess *session.Session) {
	sess.SignOut()
}
