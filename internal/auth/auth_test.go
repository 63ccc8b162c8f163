package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/config"
	"rental-backend/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "rental-backend-test"
	return cfg
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("kuwarto123")
	require.NoError(t, err)
	assert.NotEqual(t, "kuwarto123", hash)

	assert.True(t, VerifyPassword(hash, "kuwarto123"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestAdminTokenRoundTrip(t *testing.T) {
	j := NewJWTManager(testConfig())

	user := &models.User{ID: 3, Email: "admin@example.com", Role: "admin", IsActive: true}
	token, err := j.GenerateToken(user)
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTenantTokenRoundTrip(t *testing.T) {
	j := NewJWTManager(testConfig())

	tenant := &models.Tenant{ID: 12, Email: "tenant@example.com"}
	token, err := j.GenerateTenantToken(tenant)
	require.NoError(t, err)

	claims, err := j.ValidateTenantToken(token)
	require.NoError(t, err)
	assert.Equal(t, 12, claims.TenantID)
}

func TestTokenTypesDoNotCross(t *testing.T) {
	j := NewJWTManager(testConfig())

	tenantToken, err := j.GenerateTenantToken(&models.Tenant{ID: 12, Email: "tenant@example.com"})
	require.NoError(t, err)
	adminToken, err := j.GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	// An admin token parsed as tenant must fail the type check
	_, err = j.ValidateTenantToken(adminToken)
	assert.Error(t, err)

	// A tenant token presented as an admin token must fail too, not parse
	// into empty admin claims
	_, err = j.ValidateToken(tenantToken)
	assert.Error(t, err)

	// And a garbage token fails outright
	_, err = j.ValidateToken(tenantToken + "x")
	assert.Error(t, err)
}
