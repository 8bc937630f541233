package utils

import (
	"testing"

	"github.com/stakedraw/stakedraw-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateJWT("alice", "admin", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["address"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("alice", "user", testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "another-secret"
	_, err = ValidateJWT(token, other)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", testConfig())
	assert.Error(t, err)
}

func TestMaskAddress(t *testing.T) {
	assert.Equal(t, "0x12******cdef", MaskAddress("0x1234567890abcdef"))
	assert.Equal(t, "******", MaskAddress("short"))
	assert.Equal(t, "******", MaskAddress(""))
}
