package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brawldash/club-sync/internal/api/middleware"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemBytes)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate_BearerJWT(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	token := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, cfg)
	require.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, "user-1", result.AuthSubject)
	require.NotNil(t, result.Claims)
	assert.Equal(t, "user-1", result.Claims.Subject)
}

func TestAuthenticate_ExpiredJWT(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	token := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, cfg)
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_WrongKeyJWT(t *testing.T) {
	key, _ := generateKeyPair(t)
	_, otherPEM := generateKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: otherPEM}

	token := signToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, cfg)
	assert.False(t, result.Success)
}

func TestAuthenticate_JWTWithoutConfiguredKey(t *testing.T) {
	key, _ := generateKeyPair(t)
	token := signToken(t, key, jwt.RegisteredClaims{})

	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error.Error(), "not configured")
}

func TestAuthenticate_APIKey(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key-a", "key-b"}}

	tests := []struct {
		name    string
		header  string
		success bool
	}{
		{"valid key", "ApiKey key-a", true},
		{"second valid key", "apikey key-b", true},
		{"unknown key", "ApiKey nope", false},
		{"empty header", "", false},
		{"malformed header", "ApiKeykey-a", false},
		{"unsupported scheme", "Basic key-a", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := middleware.Authenticate(tc.header, cfg)
			assert.Equal(t, tc.success, result.Success)
			if tc.success {
				assert.Equal(t, "apikey", result.AuthType)
			} else {
				assert.Error(t, result.Error)
			}
		})
	}
}

func TestAuthenticate_NoAPIKeysConfigured(t *testing.T) {
	result := middleware.Authenticate("ApiKey anything", middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error.Error(), "no API keys configured")
}
