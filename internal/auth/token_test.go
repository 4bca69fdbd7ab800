package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"synthesistalk-backend/internal/apperr"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("secret", 24*time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Validate(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), userID)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.Error(t, err)
	require.Equal(t, apperr.CodeUnauthenticated, apperr.CodeOf(err))
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue(1)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Validate(token)
	require.Error(t, err)
	require.Equal(t, apperr.CodeUnauthenticated, apperr.CodeOf(err))
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Validate(tok)
		require.Error(t, err, "token %q", tok)
		require.Equal(t, apperr.CodeUnauthenticated, apperr.CodeOf(err))
	}
}

func TestValidateRejectsMissingUserID(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	// well-signed token without a user_id claim
	claims := jwt.MapClaims{"exp": jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.Error(t, err)
	require.Equal(t, apperr.CodeUnauthenticated, apperr.CodeOf(err))
}

func TestValidateRejectsUnsignedAlgorithm(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	claims := jwt.MapClaims{
		"user_id": 1,
		"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.Error(t, err)
	require.Equal(t, apperr.CodeUnauthenticated, apperr.CodeOf(err))
}
