package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"synthesistalk-backend/internal/apperr"
)

// TokenIssuer issues and validates HS256 session tokens carrying the user
// id and an absolute expiry. Verification is stateless; there is no
// revocation, a token stays valid until it expires.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for userID expiring ttl from now.
func (t *TokenIssuer) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     jwt.NewNumericDate(time.Now().Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate verifies the signature and expiry and returns the embedded user
// id. Any failure mode (bad signature, malformed token, expired, missing
// claim) is Unauthenticated.
func (t *TokenIssuer) Validate(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, apperr.Wrap(apperr.CodeUnauthenticated, "Could not validate credentials", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.New(apperr.CodeUnauthenticated, "Could not validate credentials")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, apperr.New(apperr.CodeUnauthenticated, "Could not validate credentials")
	}
	return uint(userID), nil
}
