package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	details, err := GenerateJWT("svc-checkout", "verify", "s3cret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", details.TokenType)
	assert.Equal(t, "3600", details.ExpiresIn)

	claims, err := ValidateJWT(details.Token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "svc-checkout", claims.Subject)
	assert.Equal(t, "verify", claims.Scope)
}

func TestValidateJWTRejects(t *testing.T) {
	details, err := GenerateJWT("svc", "", "right", time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(details.Token, "wrong")
	assert.Error(t, err)

	_, err = ValidateJWT("", "right")
	assert.Error(t, err)

	_, err = ValidateJWT(details.Token, "")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token", "right")
	assert.Error(t, err)
}

func TestGenerateJWTRequiresInputs(t *testing.T) {
	_, err := GenerateJWT("", "", "secret", time.Hour)
	assert.Error(t, err)

	_, err = GenerateJWT("svc", "", "", time.Hour)
	assert.Error(t, err)

	details, err := GenerateJWT("svc", "", "secret", 0)
	require.NoError(t, err)
	assert.Equal(t, "86400", details.ExpiresIn)
}
