package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, subject string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": "user@example.com",
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	token := signToken(t, "test-secret", "user-123", time.Hour)

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.ID)
	assert.Equal(t, "user@example.com", identity.Email)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	token := signToken(t, "other-secret", "user-123", time.Hour)

	_, err := verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	token := signToken(t, "test-secret", "user-123", -time.Hour)

	_, err := verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestJWTVerifier_MissingSubject(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	token := signToken(t, "test-secret", "", time.Hour)

	_, err := verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")

	_, err := verifier.Verify(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestRemoteVerifier_ValidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "user-123", "email": "user@example.com"}`))
	}))
	defer server.Close()

	verifier := NewRemoteVerifier(server.URL, "anon-key")
	identity, err := verifier.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.ID)
}

func TestRemoteVerifier_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	verifier := NewRemoteVerifier(server.URL, "")
	_, err := verifier.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestRemoteVerifier_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	verifier := NewRemoteVerifier(server.URL, "")
	_, err := verifier.Verify(context.Background(), "any-token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadToken)
}

func TestRemoteVerifier_EmptyIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	verifier := NewRemoteVerifier(server.URL, "")
	_, err := verifier.Verify(context.Background(), "any-token")
	assert.ErrorIs(t, err, ErrBadToken)
}
