package client

import (
	"context"
	"net/http"
	"net/url"

	"LifeCarePortal/models"
)

const (
	ProvidersPath        = "/providers"
	AppointmentsPath     = "/appointments"
	EnrollmentsPath      = "/enrollments"
	PaymentsPath         = "/payments"
	WellnessServicesPath = "/wellness-services"
)

// Resource is the list/create/update/delete surface shared by every
// plain CRUD collection of the backend.
type Resource[T any] struct {
	c    *Client
	path string
}

func NewResource[T any](c *Client, path string) Resource[T] {
	return Resource[T]{c: c, path: path}
}

func (r Resource[T]) List(ctx context.Context, token string) ([]T, error) {
	var items []T
	if err := r.c.do(ctx, http.MethodGet, r.path, token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r Resource[T]) Create(ctx context.Context, token string, item T) (T, error) {
	var created T
	err := r.c.do(ctx, http.MethodPost, r.path, token, item, &created)
	return created, err
}

func (r Resource[T]) Update(ctx context.Context, token string, id models.ID, item T) (T, error) {
	var updated T
	err := r.c.do(ctx, http.MethodPut, r.itemPath(id), token, item, &updated)
	return updated, err
}

func (r Resource[T]) Delete(ctx context.Context, token string, id models.ID) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), token, nil, nil)
}

func (r Resource[T]) itemPath(id models.ID) string {
	return r.path + "/" + url.PathEscape(id.String())
}

func (c *Client) Providers() Resource[models.Provider] {
	return NewResource[models.Provider](c, ProvidersPath)
}

func (c *Client) Appointments() Resource[models.Appointment] {
	return NewResource[models.Appointment](c, AppointmentsPath)
}

func (c *Client) Enrollments() Resource[models.Enrollment] {
	return NewResource[models.Enrollment](c, EnrollmentsPath)
}

func (c *Client) Payments() Resource[models.Payment] {
	return NewResource[models.Payment](c, PaymentsPath)
}

func (c *Client) WellnessServices() Resource[models.WellnessService] {
	return NewResource[models.WellnessService](c, WellnessServicesPath)
}
