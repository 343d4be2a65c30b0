package common

import (
	"errors"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/pkg/apperror"
	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextPrincipalKey = "principal" // Key to store the authenticated Principal in context
	ContextClaimsKey    = "claims"    // Key to store the parsed access token claims
)

// Principal is the authenticated caller passed into every service operation.
type Principal struct {
	UserID string
	Role   models.Role
	Email  string
	Name   string
}

// SetPrincipal stores p on the request context.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(ContextPrincipalKey, p)
}

// GetPrincipal retrieves the authenticated Principal from the Gin context.
func GetPrincipal(c *gin.Context) (*Principal, error) {
	v, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil, errors.New("principal not found in context")
	}
	p, ok := v.(*Principal)
	if !ok || p == nil {
		return nil, errors.New("principal in context has unexpected type")
	}
	return p, nil
}

// OptionalPrincipal returns the Principal or nil when the request is anonymous.
func OptionalPrincipal(c *gin.Context) *Principal {
	p, err := GetPrincipal(c)
	if err != nil {
		return nil
	}
	return p
}

// RequirePrincipal fails with Unauthenticated when p is nil.
func RequirePrincipal(p *Principal) error {
	if p == nil || p.UserID == "" {
		return apperror.Unauthenticated("")
	}
	return nil
}

// RequireRole fails with Unauthenticated for a nil principal and Forbidden
// when the role is not one of roles.
func RequireRole(p *Principal, roles ...models.Role) error {
	if err := RequirePrincipal(p); err != nil {
		return err
	}
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return apperror.Forbidden("")
}
