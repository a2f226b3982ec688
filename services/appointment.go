package services

import (
	"context"
	"log"

	"LifeCarePortal/client"
	"LifeCarePortal/models"
	"LifeCarePortal/session"
	"LifeCarePortal/utils"
)

type BookingPage struct {
	Providers    []models.Provider
	Appointments []models.Appointment
	Form         models.Appointment
	Error        string

	providers    Resource[models.Provider]
	appointments Resource[models.Appointment]
	guard        *Submission
	sess         *session.Session
}

func NewBookingPage(providers Resource[models.Provider], appointments Resource[models.Appointment], guard *Submission, sess *session.Session) *BookingPage {
	return &BookingPage{providers: providers, appointments: appointments, guard: guard, sess: sess}
}

/*
* Fetch providers for the select input
* The booked appointments table is best effort and never blocks booking
 */
func (p *BookingPage) Load(ctx context.Context) error {
	providers, err := p.providers.List(ctx, p.sess.Token)
	if err != nil {
		log.Println("Error from loading providers:", err)
		p.Error = utils.FAILED_TO_LOAD_PROVIDERS
		return err
	}
	p.Providers = providers

	appointments, err := p.appointments.List(ctx, p.sess.Token)
	if err != nil {
		log.Println("Error from loading appointments:", err)
		return nil
	}
	p.Appointments = appointments
	return nil
}

// Book creates the appointment and remembers its id in the session so
// the payments page can pick it up.
func (p *BookingPage) Book(ctx context.Context, form models.Appointment) (models.ID, error) {
	p.Form = form
	p.Error = ""
	if err := Validate(form); err != nil {
		p.Error = utils.ALL_FIELDS_REQUIRED
		return "", err
	}

	var created models.Appointment
	err := p.guard.Run(ctx, p.sess.ID+":book", func(ctx context.Context) error {
		var err error
		created, err = p.appointments.Create(ctx, p.sess.Token, form)
		if err == nil && created.ID == "" {
			err = client.ErrMissingID
		}
		return err
	})
	if err != nil {
		log.Println("Error from booking appointment:", err)
		p.Error = Message(err, utils.BOOKING_FAILED, true)
		return "", err
	}
	p.sess.SetAppointmentID(created.ID)
	return created.ID, nil
}
