package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validity is the fixed lifetime of an issued credential.
const Validity = 10 * time.Hour

var ErrInvalid = errors.New("invalid token")

// Manager issues and verifies the signed bearer credential carried on
// authenticated requests. Claims are {email, iat, exp}.
type Manager struct {
	secret []byte
	now    func() time.Time
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (m *Manager) Issue(email string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(Validity).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the embedded email.
func (m *Manager) Verify(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !t.Valid {
		return "", ErrInvalid
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalid
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalid
	}

	return email, nil
}
