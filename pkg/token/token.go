// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "top-talent"

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims defines the structure of the JWT claims the application issues.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"` // Role is carried for quick checks; the DB stays the source of truth
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

// Subject is the identity baked into a token.
type Subject struct {
	UserID string
	Role   string
	Email  string
	Name   string
}

// ValidateJWT parses, validates, and returns claims from a JWT string.
func ValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("jwt secret key is empty")
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token has expired")
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, errors.New("token is not yet valid")
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("token signature is invalid")
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.UserID == "" {
		return nil, errors.New("user_id claim is missing")
	}

	return claims, nil
}

// GenerateJWT issues a short-lived access token.
func GenerateJWT(sub Subject, secretKey string, expiryMinutes int) (string, error) {
	return sign(sub, TypeAccess, secretKey, time.Duration(expiryMinutes)*time.Minute)
}

// GenerateRefreshToken issues a long-lived refresh token.
func GenerateRefreshToken(sub Subject, secretKey string, expiryDays int) (string, error) {
	return sign(sub, TypeRefresh, secretKey, time.Duration(expiryDays)*24*time.Hour)
}

func sign(sub Subject, typ, secretKey string, ttl time.Duration) (string, error) {
	if secretKey == "" {
		return "", errors.New("jwt secret key is empty")
	}
	now := time.Now()
	claims := &Claims{
		UserID: sub.UserID,
		Role:   sub.Role,
		Email:  sub.Email,
		Name:   sub.Name,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// RemainingTTL is how long the token stays valid from now.
func (c *Claims) RemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if ttl := time.Until(c.ExpiresAt.Time); ttl > 0 {
		return ttl
	}
	return 0
}
