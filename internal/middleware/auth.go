package middleware

import (
	"context"
	"strings"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/pkg/responses"
	"github.com/Valentina9990/top-talent/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Blacklist reports whether an access token id has been revoked.
type Blacklist interface {
	IsBlacklisted(ctx context.Context, jti string) bool
}

func AuthMiddleware(jwtSecret string, db *gorm.DB, blacklist Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}
		if claims.Type != token.TypeAccess {
			responses.Unauthorized(c, "Invalid token type")
			return
		}

		if blacklist != nil && blacklist.IsBlacklisted(c.Request.Context(), claims.ID) {
			responses.Unauthorized(c, "Token has been revoked")
			return
		}

		// Role and name are re-read so a stale token never carries an old role.
		var user models.User
		err = db.WithContext(c.Request.Context()).
			Select("id", "email", "name", "role").
			Where("id = ?", claims.UserID).
			Take(&user).Error
		if err != nil {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}

		common.SetPrincipal(c, &common.Principal{
			UserID: user.ID,
			Role:   user.Role,
			Email:  user.Email,
			Name:   user.Name,
		})
		c.Set(common.ContextClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the access token claims stored by AuthMiddleware.
func GetClaims(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(common.ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
