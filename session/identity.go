package session

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"LifeCarePortal/models"
	"LifeCarePortal/role"
)

// ParseIdentity reads the claims of a backend token. The signature is
// not checked here: the portal does not hold the signing key and the
// backend verifies the token on every call.
func ParseIdentity(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("parse token claims: %w", err)
	}

	var id Identity
	if sub, err := claims.GetSubject(); err == nil {
		id.Email = sub
	}
	if r, ok := claims["role"].(string); ok {
		if parsed, err := role.Parse(r); err == nil {
			id.Role = parsed
		}
	}
	switch v := claims["patientId"].(type) {
	case string:
		id.PatientID = models.ID(v)
	case float64:
		id.PatientID = models.ID(strconv.FormatInt(int64(v), 10))
	}
	return id, nil
}
