package auth_test

import (
	"testing"
	"time"

	"github.com/corebank/backend/internal/infrastructure/auth"
	"github.com/corebank/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "corebank-test",
		MaxRefreshCount:        3,
	})
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	service := newTestJWTService()
	customerID := uuid.New()

	pair, err := service.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: customerID,
		Username:   "amara.silva",
	})
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	service := newTestJWTService()
	customerID := uuid.New()

	pair, err := service.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: customerID,
		Username:   "amara.silva",
	})
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, customerID.String(), claims.CustomerID)
	assert.Equal(t, "amara.silva", claims.Username)
	assert.Equal(t, auth.TokenTypeAccess, claims.TokenType)

	parsed, err := claims.GetCustomerUUID()
	require.NoError(t, err)
	assert.Equal(t, customerID, parsed)
}

func TestJWTService_ValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	service := newTestJWTService()

	pair, err := service.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: uuid.New(),
		Username:   "amara.silva",
	})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidTokenType)
}

func TestJWTService_ValidateAccessToken_Garbage(t *testing.T) {
	service := newTestJWTService()

	_, err := service.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	service := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "corebank-test",
		MaxRefreshCount:        3,
	})

	pair, err := service.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: uuid.New(),
		Username:   "amara.silva",
	})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	service := newTestJWTService()
	customerID := uuid.New()

	pair, err := service.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: customerID,
		Username:   "amara.silva",
	})
	require.NoError(t, err)

	newPair, err := service.RefreshTokenPair(pair.RefreshToken, "amara.silva")
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(newPair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, customerID.String(), claims.CustomerID)

	refreshClaims, err := service.ValidateRefreshToken(newPair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshClaims.RefreshCount)
}

func TestJWTService_RefreshTokenPair_MaxCount(t *testing.T) {
	service := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "corebank-test",
		MaxRefreshCount:        1,
	})

	pair, err := service.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: uuid.New(),
		Username:   "amara.silva",
	})
	require.NoError(t, err)

	pair, err = service.RefreshTokenPair(pair.RefreshToken, "amara.silva")
	require.NoError(t, err)

	_, err = service.RefreshTokenPair(pair.RefreshToken, "amara.silva")
	assert.ErrorIs(t, err, auth.ErrMaxRefreshExceeded)
}

func TestJWTService_SeparateRefreshSecret(t *testing.T) {
	service := auth.NewJWTService(config.JWTConfig{
		Secret:                 "access-secret",
		RefreshSecret:          "refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "corebank-test",
		MaxRefreshCount:        3,
	})

	pair, err := service.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: uuid.New(),
		Username:   "amara.silva",
	})
	require.NoError(t, err)

	// Tokens signed with different secrets do not cross-validate
	_, err = service.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}
