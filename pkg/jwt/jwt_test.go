package jwt

import (
	"testing"
	"time"

	"clinic-appointment-service/config"
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := testService()
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "admin@clinic.test", entity.RoleIDAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@clinic.test", claims.Email)
	assert.Equal(t, entity.RoleIDAdmin, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesRole(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken(uuid.New(), "assistant@clinic.test", entity.RoleIDAssistant)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Equal(t, entity.RoleIDAssistant, claims.RoleID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "admin@clinic.test", entity.RoleIDAdmin)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:       "different-secret",
		AccessExpiry: 15 * time.Minute,
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := testService().ValidateToken("not-a-token")
	assert.Error(t, err)
}
