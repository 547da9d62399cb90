package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	apperrors "podhub/internal/errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueSessionToken("user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifySessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	svc.now = func() time.Time {
		return time.Now().Add(-2 * SessionTokenExpiry)
	}

	token, err := svc.IssueSessionToken("user-1")
	assert.NoError(t, err)

	verifier := NewJWTService("test-secret")
	claims, err := verifier.VerifySessionToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueSessionToken("user-1")
	assert.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	claims, err := svc.VerifySessionToken(string(tampered))
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, err := issuer.IssueSessionToken("user-1")
	assert.NoError(t, err)

	claims, err := verifier.VerifySessionToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	claims := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	svc := NewJWTService("test-secret")
	parsed, err := svc.VerifySessionToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Nil(t, parsed)
}

func TestJWTService_GarbageInput(t *testing.T) {
	svc := NewJWTService("test-secret")

	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		claims, err := svc.VerifySessionToken(input)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.Nil(t, claims)
	}
}
