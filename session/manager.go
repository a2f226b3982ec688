package session

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const contextKey = "portal_session"

// Manager binds a Store to gin requests through a sealed cookie.
type Manager struct {
	store  Store
	sealer *Sealer
	ttl    time.Duration
	cookie string
	secure bool
}

func NewManager(store Store, sealer *Sealer, ttl time.Duration, cookie string, secure bool) *Manager {
	return &Manager{store: store, sealer: sealer, ttl: ttl, cookie: cookie, secure: secure}
}

func (m *Manager) Store() Store {
	return m.store
}

/*
* Open the cookie and load its session, start a fresh one when missing
* Write the cookie before the handler runs so redirects carry it
* Once the handler returns, merge what it changed into the stored copy
 */
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, stored := m.load(c)
		sess.Touch(m.ttl)

		sealed, err := m.sealer.Seal(sess.ID)
		if err != nil {
			log.Println("Error from sealing session cookie:", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cookie, sealed, int(m.ttl.Seconds()), "/", "", m.secure, true)
		c.Set(contextKey, sess)

		c.Next()

		if err := m.save(context.WithoutCancel(c.Request.Context()), sess, stored); err != nil {
			log.Println("Error from saving session:", err)
		}
	}
}

// load answers the request's session and whether it came from the
// store. A valid cookie whose session is gone keeps its id.
func (m *Manager) load(c *gin.Context) (*Session, bool) {
	value, err := c.Cookie(m.cookie)
	if err != nil || value == "" {
		return New(m.ttl), false
	}
	id, err := m.sealer.Open(value)
	if err != nil {
		log.Println("Error from opening session cookie:", err)
		return New(m.ttl), false
	}
	sess, err := m.store.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Println("Error from loading session:", err)
		}
		fresh := New(m.ttl)
		fresh.ID = id
		return fresh, false
	}
	return sess, true
}

/*
* A new session nobody wrote to is never stored
* A stored session is re-read and only the request's changes are applied,
* so concurrent requests on one cookie do not undo each other
 */
func (m *Manager) save(ctx context.Context, sess *Session, stored bool) error {
	if !stored {
		if !sess.Dirty() {
			return nil
		}
		return m.store.Save(ctx, sess)
	}
	current, err := m.store.Get(ctx, sess.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return m.store.Save(ctx, sess)
		}
		return err
	}
	return m.store.Save(ctx, current.Merge(sess))
}

// From answers the session the middleware attached to c.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	return New(time.Hour)
}
