package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, service *AuthService, authMiddleware gin.HandlerFunc) {
	authController := NewAuthController(service)

	// Public routes
	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/refresh-token", authController.RefreshToken)
		authPublic.GET("/verify-email", authController.VerifyEmail)
	}

	// Authenticated routes
	authProtected := router.Group("/auth")
	authProtected.Use(authMiddleware)
	{
		authProtected.GET("/me", authController.GetProfile)
		authProtected.PUT("/me/image", authController.UpdateProfileImage)
		authProtected.POST("/logout", authController.Logout)
	}
}
