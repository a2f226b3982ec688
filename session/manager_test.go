package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*gin.Engine, *MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := NewMemoryStore()
	sealer, err := NewSealer("secret")
	require.NoError(t, err)
	m := NewManager(store, sealer, time.Hour, "lifecare_session", false)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/count", func(c *gin.Context) {
		sess := From(c)
		v := sess.View("counter")
		v.ListVisible = !v.ListVisible
		sess.SetView("counter", v)
		if v.ListVisible {
			c.String(http.StatusOK, "on")
			return
		}
		c.String(http.StatusOK, "off")
	})
	return r, store
}

func TestMiddlewareKeepsSessionAcrossRequests(t *testing.T) {
	r, store := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/count", nil))
	assert.Equal(t, "on", w.Body.String())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/count", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "off", w.Body.String())
	assert.Equal(t, 1, store.Len())
}

func TestMiddlewareReplacesForgedCookie(t *testing.T) {
	r, store := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/count", nil)
	req.AddCookie(&http.Cookie{Name: "lifecare_session", Value: "forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "on", w.Body.String())
	assert.Equal(t, 1, store.Len())
}

func TestMiddlewareDoesNotStoreUntouchedSessions(t *testing.T) {
	r, store := newTestEngine(t)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Zero(t, store.Len())
}

func TestSlowRequestDoesNotUndoConcurrentLogin(t *testing.T) {
	r, store := newTestEngine(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	r.GET("/slow", func(c *gin.Context) {
		close(entered)
		<-release
		c.String(http.StatusOK, "done")
	})
	r.POST("/login", func(c *gin.Context) {
		From(c).SignIn("token-1", "9")
		c.String(http.StatusOK, "in")
	})
	r.GET("/whoami", func(c *gin.Context) {
		sess := From(c)
		c.String(http.StatusOK, sess.Token+"/"+string(sess.PatientID())+"/"+sess.View("counter").EditID.String())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/count", nil))
	cookie := w.Result().Cookies()[0]
	send := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		send(http.MethodGet, "/slow")
	}()
	<-entered
	require.Equal(t, "in", send(http.MethodPost, "/login").Body.String())
	close(release)
	<-done

	assert.Equal(t, "token-1/9/", send(http.MethodGet, "/whoami").Body.String())
	assert.Equal(t, 1, store.Len())
}

func TestMissingSessionKeepsCookieID(t *testing.T) {
	r, store := newTestEngine(t)
	sealer, err := NewSealer("secret")
	require.NoError(t, err)
	sealed, err := sealer.Seal("known-id")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/count", nil)
	req.AddCookie(&http.Cookie{Name: "lifecare_session", Value: sealed})
	r.ServeHTTP(httptest.NewRecorder(), req)

	_, err = store.Get(req.Context(), "known-id")
	assert.NoError(t, err)
}
