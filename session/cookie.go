package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"

	"LifeCarePortal/utils"
)

var ErrBadCookie = errors.New(utils.SESSION_COOKIE_BAD)

const nonceSize = 24

// Sealer encrypts and authenticates the session id carried by the
// cookie, so a browser can neither read nor forge one.
type Sealer struct {
	key [32]byte
}

func NewSealer(secret string) (*Sealer, error) {
	s := &Sealer{}
	kdf := hkdf.New(sha256.New, []byte(secret), []byte("lifecare-portal"), []byte("session-cookie"))
	if _, err := io.ReadFull(kdf, s.key[:]); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sealer) Seal(id string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	box := secretbox.Seal(nonce[:], []byte(id), &nonce, &s.key)
	return base64.RawURLEncoding.EncodeToString(box), nil
}

func (s *Sealer) Open(value string) (string, error) {
	box, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", ErrBadCookie
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	id, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrBadCookie
	}
	return string(id), nil
}
