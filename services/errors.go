package services

import (
	"errors"

	"LifeCarePortal/client"
	"LifeCarePortal/utils"
)

var ErrBusy = errors.New(utils.REQUEST_IN_PROGRESS)

// Message maps a failed call to the text a page shows. A backend
// message is shown only when the page surfaces them and the backend
// rejected the request (4xx); everything else collapses to fallback.
func Message(err error, fallback string, surface bool) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrBusy) {
		return utils.REQUEST_IN_PROGRESS
	}
	if surface {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Status < 500 {
			return apiErr.Message
		}
	}
	return fallback
}
