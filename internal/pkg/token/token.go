// Package token issues and validates the signed bearer tokens used as
// stateless identity capabilities. There is no revocation list: a token
// stays valid until its expiry.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 15 * time.Minute

// ErrInvalidToken is the single error surfaced for every validation
// failure: bad signature, wrong algorithm, expiry, or structural decoding.
// Callers must not learn which one it was.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity carried by a validated token.
type Claims struct {
	UserID uint
	Email  string
}

// Service signs and validates HS256 tokens with a process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService returns a Service signing with secret. A zero ttl falls back
// to DefaultTTL; a negative ttl issues already-expired tokens, which the
// tests use to exercise expiry.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token whose subject is the user id and which
// expires ttl from now.
func (s *Service) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(userID), 10),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate parses and verifies a token and returns the identity it
// carries. Any failure collapses into ErrInvalidToken.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Claims{UserID: uint(userID), Email: email}, nil
}
