package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/pkg/responses"
	"github.com/Valentina9990/top-talent/pkg/token"
	"github.com/Valentina9990/top-talent/pkg/utils"
	"github.com/Valentina9990/top-talent/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.UseJSONNames()
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler_Validation(t *testing.T) {
	service, repo, _, _ := newTestService()
	router := gin.New()
	router.POST("/auth/register", NewAuthController(service).Register)

	w := postJSON(router, "/auth/register",
		`{"email":"not-an-email","password":"secreto123","confirm_password":"otra","name":"Ana","role":"ADMIN"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "confirm_password")
	assert.Contains(t, body.Fields, "role")
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestRegisterHandler_StatusReflectsPending(t *testing.T) {
	service, repo, _, mail := newTestService()
	router := gin.New()
	router.POST("/auth/register", NewAuthController(service).Register)

	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(&models.User{Email: "ana@example.com"}, nil)
	expectVerificationEmail(repo, mail, "ana@example.com")

	w := postJSON(router, "/auth/register",
		`{"email":"ana@example.com","password":"secreto123","confirm_password":"secreto123","name":"Ana","role":"PLAYER"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data RegisterResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.Pending)
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	service, repo, _, _ := newTestService()
	router := gin.New()
	router.POST("/auth/login", NewAuthController(service).Login)

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	w := postJSON(router, "/auth/login", `{"email":"ghost@example.com","password":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginHandler_UnverifiedIsForbidden(t *testing.T) {
	service, repo, _, mail := newTestService()
	router := gin.New()
	router.POST("/auth/login", NewAuthController(service).Login)

	hash, err := utils.HashPassword("secreto123")
	require.NoError(t, err)
	repo.On("GetByEmail", mock.Anything, "luis@example.com").
		Return(&models.User{Base: models.Base{ID: "user-luis"}, Email: "luis@example.com", Role: models.RolePlayer, Password: &hash}, nil)
	expectVerificationEmail(repo, mail, "luis@example.com")

	w := postJSON(router, "/auth/login", `{"email":"luis@example.com","password":"secreto123"}`)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "access_token")
}

func TestVerifyEmailHandler_MissingToken(t *testing.T) {
	service, _, _, _ := newTestService()
	router := gin.New()
	router.GET("/auth/verify-email", NewAuthController(service).VerifyEmail)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/verify-email", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogoutHandler_RevokesAccessToken(t *testing.T) {
	service, _, tokens, _ := newTestService()

	access, err := token.GenerateJWT(token.Subject{UserID: "user-ana"}, testOpts.AccessTokenSecret, 15)
	require.NoError(t, err)
	claims, err := token.ValidateJWT(access, testOpts.AccessTokenSecret)
	require.NoError(t, err)
	tokens.On("Revoke", mock.Anything, claims.ID, mock.AnythingOfType("time.Duration")).Return(nil)

	withClaims := func(c *gin.Context) {
		common.SetPrincipal(c, &common.Principal{UserID: "user-ana", Role: models.RolePlayer})
		c.Set(common.ContextClaimsKey, claims)
		c.Next()
	}
	router := gin.New()
	RegisterAuthRoutes(router.Group("/api"), service, withClaims)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	tokens.AssertExpectations(t)
}

func TestAuthRoutes_ProtectedRequireAuth(t *testing.T) {
	service, _, _, _ := newTestService()
	router := gin.New()
	denyAll := func(c *gin.Context) { responses.Unauthorized(c, "") }
	RegisterAuthRoutes(router.Group("/api"), service, denyAll)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
