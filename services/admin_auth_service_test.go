package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := GetAdminAuthService()

	hash, err := svc.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, svc.VerifyPassword(hash, "correct horse battery"))
	assert.False(t, svc.VerifyPassword(hash, "wrong password"))
}

func TestValidatePassword(t *testing.T) {
	svc := GetAdminAuthService()

	assert.True(t, svc.ValidatePassword("12345678"))
	assert.False(t, svc.ValidatePassword("1234567"))
	assert.False(t, svc.ValidatePassword(""))
}

func TestGenerateInviteToken(t *testing.T) {
	svc := GetAdminAuthService()

	one, err := svc.GenerateInviteToken()
	require.NoError(t, err)
	two, err := svc.GenerateInviteToken()
	require.NoError(t, err)

	assert.Len(t, one, 64)
	assert.NotEqual(t, one, two)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	svc := GetAdminAuthService()

	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
	assert.Len(t, svc.HashToken("abc"), 64)
}

func TestIsInviteExpired(t *testing.T) {
	svc := GetAdminAuthService()

	assert.True(t, svc.IsInviteExpired(time.Now().Add(-time.Minute)))
	assert.False(t, svc.IsInviteExpired(time.Now().Add(time.Hour)))
}

func TestGetAdminStatus(t *testing.T) {
	svc := GetAdminAuthService()

	recent := time.Now().Add(-time.Hour)
	stale := time.Now().AddDate(0, 0, -8)

	assert.Equal(t, "active", svc.GetAdminStatus("active", &recent))
	assert.Equal(t, "inactive", svc.GetAdminStatus("active", &stale))
	assert.Equal(t, "suspended", svc.GetAdminStatus("suspended", &recent))

	// Never logged in is not treated as inactive
	assert.Equal(t, "active", svc.GetAdminStatus("active", nil))
}
