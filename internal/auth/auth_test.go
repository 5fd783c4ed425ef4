package auth

import (
	"strings"
	"testing"
	"time"

	"neoflix/internal/apperr"
	"neoflix/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "a_secret_used_only_in_tests"

func newCodec(t *testing.T) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(config.AuthConfig{JWTSecret: testSecret, Issuer: "auth0", Expiry: 24 * time.Hour})
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodecRequiresSecret(t *testing.T) {
	_, err := NewTokenCodec(config.AuthConfig{})
	require.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	codec := newCodec(t)

	for _, userID := range []string{"1185150b-9e81-46a2-a1d3-eb649544b9c4", "unknown", "x"} {
		t.Run(userID, func(t *testing.T) {
			token, err := codec.Sign(userID, map[string]any{"userId": userID, "name": "Graph Academy"})
			require.NoError(t, err)

			got, err := codec.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, userID, got)
		})
	}
}

func TestSignClaims(t *testing.T) {
	codec := newCodec(t)
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }

	token, err := codec.Sign("user-1", map[string]any{"name": "Graph Academy"})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return issued }))
	require.NoError(t, err)

	assert.Equal(t, "auth0", claims["iss"])
	assert.Equal(t, "user-1", claims["sub"])
	assert.EqualValues(t, issued.Unix(), claims["iat"])
	assert.EqualValues(t, issued.Add(24*time.Hour).Unix(), claims["exp"])
	assert.Equal(t, map[string]any{"name": "Graph Academy"}, claims["user-1"])
}

func TestVerifyRejects(t *testing.T) {
	codec := newCodec(t)
	valid, err := codec.Sign("user-1", nil)
	require.NoError(t, err)

	expiredCodec := newCodec(t)
	expiredCodec.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := expiredCodec.Sign("user-1", nil)
	require.NoError(t, err)

	otherIssuer, err := NewTokenCodec(config.AuthConfig{JWTSecret: testSecret, Issuer: "someone-else"})
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.Sign("user-1", nil)
	require.NoError(t, err)

	otherSecret, err := NewTokenCodec(config.AuthConfig{JWTSecret: "another secret"})
	require.NoError(t, err)
	wrongSecret, err := otherSecret.Sign("user-1", nil)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"iss": "auth0", "sub": "user-1", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong issuer": wrongIssuer,
		"wrong secret": wrongSecret,
		"none alg":     noneAlg,
		"tampered":     valid[:len(valid)-2] + "xx",
		"garbage":      "not.a.token",
		"empty":        "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Verify(token)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindAuth), "want auth error, got %v", err)
		})
	}
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("letmein")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), "hash should embed its cost: %s", hash)
	assert.NotEqual(t, "letmein", hash)
	assert.True(t, hasher.Verify("letmein", hash))
	assert.False(t, hasher.Verify("letmeout", hash))
	assert.False(t, hasher.Verify("letmein", "not-a-hash"))

	other, err := hasher.Hash("letmein")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salts should differ")
}

func TestPasswordHasherCost(t *testing.T) {
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
	assert.Equal(t, DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, DefaultCost, NewPasswordHasher(99).cost)

	hash, err := NewPasswordHasher(-1).Hash("letmein")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}
