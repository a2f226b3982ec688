package client

import (
	"context"
	"net/http"

	"LifeCarePortal/models"
)

const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
)

// Login answers the issued token. A 2xx without a token is an error.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var res models.LoginResponse
	if err := c.do(ctx, http.MethodPost, LoginPath, "", creds, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", ErrMissingToken
	}
	return res.Token, nil
}

func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, http.MethodPost, RegisterPath, "", reg, nil)
}
