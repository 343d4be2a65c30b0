package auth

import (
	"net/http"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/middleware"
	"github.com/Valentina9990/top-talent/pkg/responses"
	"github.com/Valentina9990/top-talent/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *AuthService
}

func NewAuthController(service *AuthService) *AuthController {
	return &AuthController{service: service}
}

// @Summary      Register a new user
// @Description  Creates a PLAYER or SCHOOL account with an empty profile and emails a verification link. Registering again with an unverified email re-sends the link.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} responses.SuccessResponse{data=RegisterResult} "Account created"
// @Success      200   {object} responses.SuccessResponse{data=RegisterResult} "Verification re-sent"
// @Failure      409   {object} responses.ErrorResponse "Email already in use"
// @Failure      422   {object} responses.ErrorResponse "Invalid fields"
// @Failure      500   {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	result, err := ac.service.Register(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	status := http.StatusCreated
	if result.Pending {
		status = http.StatusOK
	}
	responses.SendSuccess(c, status, result.Message, result)
}

// @Summary      Verify email
// @Description  Consumes the token from the verification email.
// @Tags         Auth
// @Produce      json
// @Param        token query string true "Verification token"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse "Token does not exist"
// @Failure      422 {object} responses.ErrorResponse "Token has expired"
// @Router       /auth/verify-email [get]
func (ac *AuthController) VerifyEmail(c *gin.Context) {
	tokenValue := c.Query("token")
	if tokenValue == "" {
		responses.SendValidationError(c, map[string]string{"token": "This field is required"})
		return
	}
	if err := ac.service.VerifyEmail(c.Request.Context(), tokenValue); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Email verified", nil)
}

// @Summary      Login user
// @Description  Authenticate with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse} "Tokens and user"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      403   {object} responses.ErrorResponse "Email not verified"
// @Failure      404   {object} responses.ErrorResponse "User not found"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	resp, err := ac.service.Login(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged in", resp)
}

// @Summary      Refresh Access Token
// @Description  Exchanges a valid refresh token for a new token pair. The old refresh token is revoked.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh Token Request"
// @Success      200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	resp, err := ac.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Session refreshed", resp)
}

// @Summary      Logout
// @Description  Revokes the current access token and, if sent, the session's refresh token.
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "Refresh token to revoke"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	var req LogoutRequest
	// The body is optional.
	_ = c.ShouldBindJSON(&req)

	claims, _ := middleware.GetClaims(c)
	if err := ac.service.Logout(c.Request.Context(), claims, req.RefreshToken); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out", nil)
}

// @Summary      Get current user
// @Tags         Profile
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	me, err := ac.service.Me(c.Request.Context(), common.OptionalPrincipal(c))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved", me)
}

// @Summary      Update account image
// @Tags         Profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body UpdateImageRequest true "Image URL"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/me/image [put]
func (ac *AuthController) UpdateProfileImage(c *gin.Context) {
	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if err := ac.service.UpdateImage(c.Request.Context(), common.OptionalPrincipal(c), req.Image); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Image updated", nil)
}
