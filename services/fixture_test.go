package services

import (
	"testing"
	"time"

	"LifeCarePortal/client"
	"LifeCarePortal/client/clienttest"
	"LifeCarePortal/session"
)

type fixture struct {
	backend *clienttest.Backend
	api     *client.Client
	guard   *Submission
	sess    *session.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := clienttest.New()
	t.Cleanup(b.Close)
	return &fixture{
		backend: b,
		api:     b.Client(),
		guard:   NewSubmission(),
		sess:    session.New(time.Hour),
	}
}
