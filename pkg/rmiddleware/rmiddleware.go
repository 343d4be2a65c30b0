package rmiddleware

import (
	"net/http"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/pkg/apperror"
	"github.com/Valentina9990/top-talent/pkg/responses"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware lets the request through only when the principal set by
// AuthMiddleware has one of requiredRoles.
func RoleMiddleware(requiredRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := common.GetPrincipal(c)
		if err != nil {
			responses.Unauthorized(c, "Unauthorized: "+err.Error())
			return
		}

		if err := common.RequireRole(p, requiredRoles...); err != nil {
			if apperror.Is(err, apperror.KindForbidden) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":     "Forbidden",
					"code":      http.StatusForbidden,
					"message":   "You don't have permission to access this resource",
					"required":  requiredRoles,
					"user_role": p.Role,
				})
				return
			}
			responses.SendAppError(c, err)
			return
		}

		c.Next()
	}
}

// PlayerMiddleware is a convenience middleware for player-only access
func PlayerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.RolePlayer)
}

// SchoolMiddleware is a convenience middleware for school-only access
func SchoolMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.RoleSchool)
}
