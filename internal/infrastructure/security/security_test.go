package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateULID(t *testing.T) {
	first := GenerateULID()
	second := GenerateULID()

	assert.Len(t, first, 26)
	assert.NotEqual(t, first, second)
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	other, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, VerifyPassword(hash, "wrong-pass"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret-pass"))
}

func TestHashPasswordFallsBackOnBadCost(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 99)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "s3cret-pass"))
}

func TestSellerTokenRoundTrip(t *testing.T) {
	token, err := GenerateSellerToken("user-1", "seller@example.com", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, "test-secret")
	require.NoError(t, err)

	userID, email, err := SellerFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "seller@example.com", email)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSellerToken("user-1", "seller@example.com", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateSellerToken("user-1", "seller@example.com", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", "test-secret")
	assert.Error(t, err)
}
