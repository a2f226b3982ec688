package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealerRoundTrip(t *testing.T) {
	s, err := NewSealer("top-secret")
	require.NoError(t, err)

	sealed, err := s.Seal("session-1")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "session-1")

	id, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestSealerRejectsTamperingAndForeignKeys(t *testing.T) {
	s, err := NewSealer("top-secret")
	require.NoError(t, err)
	other, err := NewSealer("another-secret")
	require.NoError(t, err)

	sealed, err := s.Seal("session-1")
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, ErrBadCookie)

	tampered := []byte(sealed)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}
	_, err = s.Open(string(tampered))
	assert.ErrorIs(t, err, ErrBadCookie)

	_, err = s.Open("short")
	assert.ErrorIs(t, err, ErrBadCookie)
}
