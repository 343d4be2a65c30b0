package auth

import (
	"time"

	"github.com/Valentina9990/top-talent/internal/models"
)

type RegisterRequest struct {
	Email           string      `json:"email" binding:"required,email" example:"ana@example.com"`
	Password        string      `json:"password" binding:"required,min=6,max=72" example:"secreto123"`
	ConfirmPassword string      `json:"confirm_password" binding:"required,eqfield=Password" example:"secreto123"`
	Name            string      `json:"name" binding:"required,min=1,max=100" example:"Ana Gómez"`
	Role            models.Role `json:"role" binding:"required,oneof=PLAYER SCHOOL" example:"PLAYER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"secreto123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// LogoutRequest optionally names the refresh token to revoke with the session.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateImageRequest struct {
	Image string `json:"image" binding:"required,url" example:"https://media.example.com/images/u1/a.png"`
}

// UserResponse is the account as returned to its owner.
type UserResponse struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	Name          string      `json:"name"`
	Role          models.Role `json:"role"`
	Image         *string     `json:"image"`
	EmailVerified *time.Time  `json:"email_verified"`
	CreatedAt     time.Time   `json:"created_at"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RegisterResult tells the client whether a fresh account was created or an
// unverified one got a new verification email.
type RegisterResult struct {
	Message string `json:"message"`
	Pending bool   `json:"pending"`
}

// FilterUserRecord strips credentials from a user.
func FilterUserRecord(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		Image:         u.Image,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
