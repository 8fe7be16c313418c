package services

import (
	"testing"

	"agrilink-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewAuthService("test-secret", 3600)

	user := &models.User{ID: "u1", Email: "seller@agrilink.example", Role: models.UserRoleWholesaler}
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "seller@agrilink.example", claims.Email)
	assert.Equal(t, "WHOLESALER", claims.Role)
	assert.Equal(t, "agrilink", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewAuthService("test-secret", 3600)
	other := NewAuthService("different-secret", 3600)

	token, err := svc.GenerateToken(&models.User{ID: "u1", Email: "a@b.c", Role: models.UserRoleAdmin})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewAuthService("test-secret", 3600)
	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestBlacklistToken(t *testing.T) {
	svc := NewAuthService("test-secret", 3600)

	token, err := svc.GenerateToken(&models.User{ID: "u1", Email: "a@b.c", Role: models.UserRoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	svc.BlacklistToken(token)
	assert.True(t, svc.IsTokenBlacklisted(token))

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := NewAuthService("test-secret", 3600)

	token, err := svc.GenerateToken(&models.User{ID: "u1", Email: "a@b.c", Role: models.UserRoleFarmer})
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(fresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "FARMER", claims.Role)
}
