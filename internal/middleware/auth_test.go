package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "access-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type revoked map[string]bool

func (r revoked) IsBlacklisted(_ context.Context, jti string) bool { return r[jti] }

func request(t *testing.T, handler gin.HandlerFunc, authorization string) int {
	t.Helper()
	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w.Code
}

func TestAuthMiddleware_RejectsBeforeTouchingTheDatabase(t *testing.T) {
	sub := token.Subject{UserID: "user-1"}
	access, err := token.GenerateJWT(sub, secret, 15)
	require.NoError(t, err)
	refresh, err := token.GenerateRefreshToken(sub, secret, 7)
	require.NoError(t, err)
	claims, err := token.ValidateJWT(access, secret)
	require.NoError(t, err)

	cases := []struct {
		name      string
		header    string
		blacklist Blacklist
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic " + access},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "refresh token", header: "Bearer " + refresh},
		{name: "revoked token", header: "Bearer " + access, blacklist: revoked{claims.ID: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// A nil db panics if reached, so a 401 proves the early exit.
			code := request(t, AuthMiddleware(secret, nil, tc.blacklist), tc.header)
			assert.Equal(t, http.StatusUnauthorized, code)
		})
	}
}

func TestGetClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetClaims(c)
	assert.False(t, ok)

	c.Set(common.ContextClaimsKey, &token.Claims{UserID: "user-1"})
	claims, ok := GetClaims(c)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.UserID)
}
