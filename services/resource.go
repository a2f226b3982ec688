package services

import (
	"context"
	"errors"
	"log"

	"LifeCarePortal/models"
	"LifeCarePortal/session"
)

// Resource is the backend surface of one CRUD collection.
type Resource[T any] interface {
	List(ctx context.Context, token string) ([]T, error)
	Create(ctx context.Context, token string, item T) (T, error)
	Update(ctx context.Context, token string, id models.ID, item T) (T, error)
	Delete(ctx context.Context, token string, id models.ID) error
}

// PageOptions describes what differs between the CRUD pages.
type PageOptions[T any] struct {
	Name     string
	Defaults func() T
	IDOf     func(T) models.ID
	// ForEdit copies a listed item into the form.
	ForEdit func(T) T
	// Check adds rules the validate tags cannot express.
	Check func(draft T, editing bool) error

	Required     string
	LoadFailed   string
	SaveFailed   string
	DeleteFailed string
	Created      string
	Updated      string
	Deleted      string

	SurfaceBackend bool
	ConfirmDelete  bool
}

// ResourcePage holds the state of one render of a CRUD page. Items are
// only trusted right after a successful Load.
type ResourcePage[T any] struct {
	Items       []T
	Form        T
	EditID      models.ID
	ListVisible bool
	ConfirmID   models.ID
	Error       string
	Success     string

	opts  *PageOptions[T]
	api   Resource[T]
	guard *Submission
	sess  *session.Session
}

func NewResourcePage[T any](opts *PageOptions[T], api Resource[T], guard *Submission, sess *session.Session) *ResourcePage[T] {
	view := sess.View(opts.Name)
	p := &ResourcePage[T]{
		Form:        opts.Defaults(),
		EditID:      view.EditID,
		ListVisible: view.ListVisible,
		Error:       view.Alert,
		Success:     view.Notice,
		opts:        opts,
		api:         api,
		guard:       guard,
		sess:        sess,
	}
	if view.Alert != "" || view.Notice != "" {
		view.Alert, view.Notice = "", ""
		sess.SetView(opts.Name, view)
	}
	return p
}

func (p *ResourcePage[T]) Name() string {
	return p.opts.Name
}

func (p *ResourcePage[T]) Editing() bool {
	return p.EditID != ""
}

func (p *ResourcePage[T]) Load(ctx context.Context) error {
	items, err := p.api.List(ctx, p.sess.Token)
	if err != nil {
		log.Println("Error from loading "+p.opts.Name+":", err)
		p.Error = Message(err, p.opts.LoadFailed, false)
		return err
	}
	p.Items = items
	return nil
}

/*
* Keep the draft in the form whatever happens
* Reject missing required fields before any network call
* Update when an edit is pending, create otherwise
* On success leave edit mode, reset the form and reload the list
 */
func (p *ResourcePage[T]) Submit(ctx context.Context, draft T) error {
	p.Form = draft
	p.Error, p.Success = "", ""

	editing := p.Editing()
	err := Validate(draft)
	if err == nil && p.opts.Check != nil {
		err = p.opts.Check(draft, editing)
	}
	if err != nil {
		p.Error = p.opts.Required
		return err
	}

	err = p.guard.Run(ctx, p.key("submit"), func(ctx context.Context) error {
		if editing {
			_, err := p.api.Update(ctx, p.sess.Token, p.EditID, draft)
			return err
		}
		_, err := p.api.Create(ctx, p.sess.Token, draft)
		return err
	})
	if err != nil {
		log.Println("Error from saving "+p.opts.Name+":", err)
		p.Error = Message(err, p.opts.SaveFailed, p.opts.SurfaceBackend)
		return err
	}

	if editing {
		p.Success = p.opts.Updated
	} else {
		p.Success = p.opts.Created
	}
	p.EditID = ""
	p.Form = p.opts.Defaults()
	p.persist()
	_ = p.Load(ctx)
	return nil
}

// Edit switches the form into update mode for the listed item id.
func (p *ResourcePage[T]) Edit(id models.ID) bool {
	for _, item := range p.Items {
		if p.opts.IDOf(item) == id {
			p.Form = p.opts.ForEdit(item)
			p.EditID = id
			p.persist()
			return true
		}
	}
	return false
}

func (p *ResourcePage[T]) CancelEdit() {
	p.EditID = ""
	p.Form = p.opts.Defaults()
	p.persist()
}

/*
* Ask first when the page wants a confirmation
* Delete, then reload the list whether or not the delete worked
* Leave edit mode when the edited item is the one removed
 */
func (p *ResourcePage[T]) Remove(ctx context.Context, id models.ID, confirmed bool) error {
	p.Error, p.Success = "", ""
	if p.opts.ConfirmDelete && !confirmed {
		p.ConfirmID = id
		_ = p.Load(ctx)
		return nil
	}

	err := p.guard.Run(ctx, p.key("delete"), func(ctx context.Context) error {
		return p.api.Delete(ctx, p.sess.Token, id)
	})
	if err == nil && p.EditID == id {
		p.EditID = ""
		p.Form = p.opts.Defaults()
		p.persist()
	}

	loadErr := p.Load(ctx)
	if err != nil {
		log.Println("Error from deleting "+p.opts.Name+":", err)
		p.Error = Message(err, p.opts.DeleteFailed, p.opts.SurfaceBackend)
		return err
	}
	p.Success = p.opts.Deleted
	return loadErr
}

// AskDelete shows the confirmation for a listed item. Call it after Load.
func (p *ResourcePage[T]) AskDelete(id models.ID) {
	if !p.opts.ConfirmDelete || id == "" {
		return
	}
	for _, item := range p.Items {
		if p.opts.IDOf(item) == id {
			p.ConfirmID = id
			return
		}
	}
}

// Flash keeps the current messages for the next render of the page.
func (p *ResourcePage[T]) Flash() {
	view := p.sess.View(p.opts.Name)
	view.Alert = p.Error
	view.Notice = p.Success
	p.sess.SetView(p.opts.Name, view)
}

// ToggleList flips the table's visibility. It never calls the backend.
func (p *ResourcePage[T]) ToggleList() {
	p.ListVisible = !p.ListVisible
	p.persist()
}

func (p *ResourcePage[T]) persist() {
	view := p.sess.View(p.opts.Name)
	view.EditID = p.EditID
	view.ListVisible = p.ListVisible
	p.sess.SetView(p.opts.Name, view)
}

func (p *ResourcePage[T]) key(action string) string {
	return p.sess.ID + ":" + p.opts.Name + ":" + action
}

// IsValidation reports whether err came from the required-field check.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
