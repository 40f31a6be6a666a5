package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTServiceRejectsEmptySecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
}

func TestGenerateAndVerifyAdminJWT(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	token, err := GenerateAdminJWT("admin-123", "ops@novamart.dev")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", claims.AdminID)
	assert.Equal(t, "ops@novamart.dev", claims.Email)
	assert.Equal(t, "novamart-backoffice", claims.Issuer)
}

func TestGenerateAdminJWTRejectsEmptyFields(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := GenerateAdminJWT("", "ops@novamart.dev")
	assert.Error(t, err)

	_, err = GenerateAdminJWT("admin-123", "")
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsWrongSecret(t *testing.T) {
	require.NoError(t, InitJWTService("secret-one"))
	token, err := GenerateAdminJWT("admin-123", "ops@novamart.dev")
	require.NoError(t, err)

	require.NoError(t, InitJWTService("secret-two"))
	_, err = VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsGarbage(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := VerifyAdminJWT("not-a-token")
	assert.Error(t, err)
}
