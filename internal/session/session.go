package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrMalformedToken  = errors.New("malformed access token")
	ErrTokenExpired    = errors.New("access token expired")
	ErrMissingIdentity = errors.New("access token carries no user id")
)

// Claims mirrors the payload the backend puts in its access tokens.
type Claims struct {
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// Session is the logged-in user's identity, threaded explicitly into every
// controller and flow that needs it. The zero value is an anonymous session.
type Session struct {
	UserID    uint
	Name      string
	Email     string
	Address   string
	Token     string
	ExpiresAt time.Time
}

func Anonymous() Session {
	return Session{}
}

func (s Session) LoggedIn() bool {
	return s.UserID != 0
}

// FromToken builds a Session from a backend-issued access token. The client
// does not hold the signing key, so claims are decoded without signature
// verification; the backend re-verifies the token on every request anyway.
func FromToken(token string) (Session, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Session{}, ErrMalformedToken
	}

	if claims.UserID == 0 {
		return Session{}, ErrMissingIdentity
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
		if time.Now().After(expiresAt) {
			return Session{}, ErrTokenExpired
		}
	}

	return Session{
		UserID:    claims.UserID,
		Name:      claims.Name,
		Email:     claims.Email,
		Address:   claims.Address,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
