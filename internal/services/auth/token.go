package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/famousguessr/famousguessr-go/internal/dependencies/clock"
	"github.com/famousguessr/famousguessr-go/internal/model"
)

// TokenClaims are the JWT claims carried by an access token. The subject is
// the user id. The role is informational only; authorization always checks
// the stored user so promotions take effect without re-issuing tokens.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenMaker issues and parses signed bearer tokens
type TokenMaker struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewTokenMaker creates a TokenMaker with the given HMAC secret and token
// lifetime
func NewTokenMaker(secret string, ttl time.Duration, clock clock.Clock) *TokenMaker {
	return &TokenMaker{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Generate issues a signed token for the user
func (m *TokenMaker) Generate(user *model.User) (string, error) {
	now := m.clock.Now()
	claims := TokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token's signature and expiry and returns its claims
func (m *TokenMaker) Parse(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(_ *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
