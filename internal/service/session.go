package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidSessionToken is returned when a session token cannot be
	// parsed or verified.
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// SessionService issues and verifies signed cart session tokens. There are
// no accounts: a token only binds a client to its own cart ID so cart IDs
// cannot be guessed across sessions.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a SessionService with the given signing secret
// and token lifetime.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// sessionClaims are the JWT claims of a cart session token.
type sessionClaims struct {
	CartID string `json:"cart_id"`
	jwt.RegisteredClaims
}

// Open creates a new cart session: a fresh cart ID and a token bound to it.
func (s *SessionService) Open() (cartID, token string, err error) {
	cartID = uuid.New().String()
	token, err = s.IssueToken(cartID)
	return cartID, token, err
}

// IssueToken signs a session token for the given cart ID.
func (s *SessionService) IssueToken(cartID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		CartID: cartID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses a session token and returns the cart ID it is bound to.
func (s *SessionService) VerifyToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.CartID == "" {
		return "", ErrInvalidSessionToken
	}
	return claims.CartID, nil
}
