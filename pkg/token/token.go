// Package token issues and verifies the signed identity tokens that every
// protected request carries. The signing secret and validity window live only
// here, so a short-lived or revocable scheme can replace this service without
// touching call sites.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultTTL matches the original deployment: tokens live for a year and
// cannot be revoked.
const DefaultTTL = 365 * 24 * time.Hour

type Claims struct {
	SubjectID string `json:"id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the resolved subject of a verified token.
type Identity struct {
	SubjectID uuid.UUID
	Role      string
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token embedding the subject id and role. Pure function of
// inputs, secret and current time; nothing is persisted.
func (s *Service) Issue(subjectID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID: subjectID.String(),
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
func (s *Service) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	subjectID, err := uuid.Parse(claims.SubjectID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		SubjectID: subjectID,
		Role:      claims.Role,
	}, nil
}

// ExtractFromHeader pulls the raw token out of an Authorization header value.
// Returns "" when the header is absent or not in "Bearer <token>" form.
func ExtractFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
