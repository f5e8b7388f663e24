package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("vault-server", 42, time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "vault-server")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", 42, time.Hour, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("issuer", 42, 0, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("issuer", 42, time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("vault-server", 7, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-secret", "vault-server")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("vault-server", 7, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "someone-else")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("vault-server", 7, -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "vault-server")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("vault-server", 314, time.Hour, "secret")
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(314), id)
}
