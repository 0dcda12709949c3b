package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niepng/niep-backend/internal/pkg/constants"
)

func TestAuthTokenRoundtrip(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-signing-key")
	t.Cleanup(func() { viper.Set(constants.ViperAuthSecret, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{
		Email:  "admin@example.org",
		Secret: "shared-admin-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := ParseAuthToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.org", parsed.Email)
	assert.Equal(t, "shared-admin-secret", parsed.Secret)
	assert.NotEmpty(t, parsed.Id)
	assert.Greater(t, parsed.ExpiresAt, parsed.IssuedAt)
}

func TestParseAuthTokenRejectsTampering(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-signing-key")
	t.Cleanup(func() { viper.Set(constants.ViperAuthSecret, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{Email: "admin@example.org"})
	require.NoError(t, err)

	_, err = ParseAuthToken(signed + "x")
	assert.ErrorIs(t, err, constants.ErrInvalidToken)

	_, err = ParseAuthToken("not.a.token")
	assert.ErrorIs(t, err, constants.ErrInvalidToken)
}

func TestParseAuthTokenRejectsRotatedSecret(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "old-key")
	t.Cleanup(func() { viper.Set(constants.ViperAuthSecret, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{Email: "admin@example.org"})
	require.NoError(t, err)

	viper.Set(constants.ViperAuthSecret, "new-key")

	_, err = ParseAuthToken(signed)
	assert.ErrorIs(t, err, constants.ErrInvalidToken)
}
