package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFromBearerHeader(t *testing.T) {
	resolver := NewResolver("secret", "")
	token, err := resolver.IssueToken("alice", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, "alice", resolver.UserFromRequest(req))
}

func TestUserFromCookie(t *testing.T) {
	resolver := NewResolver("secret", "session")
	token, err := resolver.IssueToken("bob", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})

	assert.Equal(t, "bob", resolver.UserFromRequest(req))
}

func TestUsernameClaim(t *testing.T) {
	resolver := NewResolver("secret", "")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "carol"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	user, err := resolver.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "carol", user)
}

func TestInvalidTokensAreAnonymous(t *testing.T) {
	resolver := NewResolver("secret", "")
	other := NewResolver("other-secret", "")

	wrongKey, _ := other.IssueToken("mallory", nil)
	expired, _ := resolver.IssueToken("alice", jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "eve"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	for name, token := range map[string]string{
		"wrong key": wrongKey,
		"expired":   expired,
		"none alg":  noneAlg,
		"garbage":   "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			assert.Equal(t, "", resolver.UserFromRequest(req))
		})
	}
}

func TestDisabledResolver(t *testing.T) {
	resolver := NewResolver("", "")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer whatever")

	assert.False(t, resolver.Enabled())
	assert.Equal(t, "", resolver.UserFromRequest(req))
}
