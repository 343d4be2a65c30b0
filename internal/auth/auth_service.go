package auth

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/mailer"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/user"
	"github.com/Valentina9990/top-talent/pkg/apperror"
	"github.com/Valentina9990/top-talent/pkg/token"
	"github.com/Valentina9990/top-talent/pkg/utils"
)

const (
	verificationTokenLength = 64
	verificationTokenTTL    = 24 * time.Hour

	msgVerificationSent    = "A verification email has been sent. Check your spam folder if you cannot find it."
	msgVerificationResent  = "You already have an account pending verification. The verification email has been sent again."
	msgInvalidCredentials  = "Invalid credentials"
	msgVerifyBeforeLogin   = "Verify your email to sign in. A new verification link has been sent."
	msgInvalidRefreshToken = "Invalid or expired refresh token"
)

// Options carries the token settings and links the service needs.
type Options struct {
	AccessTokenSecret        string
	AccessTokenExpiryMinutes int
	RefreshTokenSecret       string
	RefreshTokenExpiryDays   int
	FrontendURL              string
}

type AuthService struct {
	repo   user.UserRepository
	tokens TokenStore
	mail   mailer.Mailer
	opts   Options
	now    func() time.Time
}

func NewAuthService(repo user.UserRepository, tokens TokenStore, mail mailer.Mailer, opts Options) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, mail: mail, opts: opts, now: time.Now}
}

// Register creates the account and its empty profile, then emails a
// verification link. An unverified account with the same email gets a new
// link instead.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := user.NormalizeEmail(req.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Persistence("Could not register", err)
	}
	if existing != nil {
		if existing.EmailVerified != nil {
			return nil, apperror.Conflict("Email already in use")
		}
		if err := s.sendVerification(ctx, email); err != nil {
			return nil, err
		}
		return &RegisterResult{Message: msgVerificationResent, Pending: true}, nil
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Persistence("Could not register", err)
	}

	newUser := &models.User{
		Email:    email,
		Password: &hash,
		Name:     strings.TrimSpace(req.Name),
		Role:     req.Role,
	}
	switch req.Role {
	case models.RolePlayer:
		newUser.PlayerProfile = &models.PlayerProfile{}
	case models.RoleSchool:
		newUser.SchoolProfile = &models.SchoolProfile{OfficialName: models.StringPtr(newUser.Name)}
	default:
		return nil, apperror.Validation("", map[string]string{"role": "Must be one of: PLAYER SCHOOL"})
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, apperror.Persistence("Could not register", err)
	}
	if err := s.sendVerification(ctx, email); err != nil {
		return nil, err
	}
	return &RegisterResult{Message: msgVerificationSent}, nil
}

// sendVerification replaces any outstanding token for email and mails the
// new one. A mail failure is logged; the token stays valid.
func (s *AuthService) sendVerification(ctx context.Context, email string) error {
	vt := &models.VerificationToken{
		Email:     email,
		Token:     utils.GenerateRandomToken(verificationTokenLength),
		ExpiresAt: s.now().Add(verificationTokenTTL),
	}
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo user.UserRepository) error {
		if err := repo.DeleteVerificationTokens(ctx, email); err != nil {
			return err
		}
		return repo.SaveVerificationToken(ctx, vt)
	})
	if err != nil {
		return apperror.Persistence("Could not create verification token", err)
	}

	if err := s.mail.Send(ctx, mailer.VerificationMessage(s.opts.FrontendURL, email, vt.Token)); err != nil {
		log.Printf("send verification email to %s: %v", email, err)
	}
	return nil
}

// VerifyEmail consumes a verification token and marks its email verified.
func (s *AuthService) VerifyEmail(ctx context.Context, tokenValue string) error {
	vt, err := s.repo.GetVerificationToken(ctx, strings.TrimSpace(tokenValue))
	if err != nil {
		return apperror.Persistence("Could not verify email", err)
	}
	if vt == nil {
		return apperror.NotFound("Token does not exist")
	}
	if s.now().After(vt.ExpiresAt) {
		return apperror.Validation("Token has expired", map[string]string{"token": "Token has expired"})
	}

	existing, err := s.repo.GetByEmail(ctx, vt.Email)
	if err != nil {
		return apperror.Persistence("Could not verify email", err)
	}
	if existing == nil {
		return apperror.NotFound("Email does not exist")
	}

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo user.UserRepository) error {
		if err := repo.MarkEmailVerified(ctx, vt.Email, s.now()); err != nil {
			return err
		}
		return repo.DeleteVerificationTokens(ctx, vt.Email)
	})
	if err != nil {
		return apperror.Persistence("Could not verify email", err)
	}
	return nil
}

// Login checks the password and issues a token pair. The returned role lets
// the client pick its dashboard. An unverified account gets a fresh
// verification email instead of tokens.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Persistence("Could not sign in", err)
	}
	if u == nil || u.Password == nil {
		return nil, apperror.NotFound("User not found")
	}
	if !utils.CheckPassword(*u.Password, req.Password) {
		return nil, apperror.Unauthenticated(msgInvalidCredentials)
	}
	if u.EmailVerified == nil {
		if err := s.sendVerification(ctx, u.Email); err != nil {
			return nil, err
		}
		return nil, apperror.Forbidden(msgVerifyBeforeLogin)
	}
	return s.issue(u)
}

// Refresh exchanges a live refresh token for a new pair and revokes the old one.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := token.ValidateJWT(refreshToken, s.opts.RefreshTokenSecret)
	if err != nil || claims.Type != token.TypeRefresh {
		return nil, apperror.Unauthenticated(msgInvalidRefreshToken)
	}
	if s.tokens.IsBlacklisted(ctx, claims.ID) {
		return nil, apperror.Unauthenticated(msgInvalidRefreshToken)
	}

	u, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Persistence("Could not refresh session", err)
	}
	if u == nil {
		return nil, apperror.Unauthenticated(msgInvalidRefreshToken)
	}

	if err := s.tokens.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		log.Printf("revoke refresh token %s: %v", claims.ID, err)
	}
	return s.issue(u)
}

// Logout revokes the access token behind the request and, when given, the
// refresh token of the same session.
func (s *AuthService) Logout(ctx context.Context, access *token.Claims, refreshToken string) error {
	if access == nil {
		return apperror.Unauthenticated("")
	}
	if err := s.tokens.Revoke(ctx, access.ID, access.RemainingTTL()); err != nil {
		log.Printf("revoke access token %s: %v", access.ID, err)
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := token.ValidateJWT(refreshToken, s.opts.RefreshTokenSecret)
	if err != nil || claims.Type != token.TypeRefresh || claims.UserID != access.UserID {
		return nil
	}
	if err := s.tokens.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		log.Printf("revoke refresh token %s: %v", claims.ID, err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, p *common.Principal) (*UserResponse, error) {
	if err := common.RequirePrincipal(p); err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, apperror.Persistence("Could not load account", err)
	}
	if u == nil {
		return nil, apperror.NotFound("User not found")
	}
	resp := FilterUserRecord(u)
	return &resp, nil
}

// UpdateImage sets the account picture.
func (s *AuthService) UpdateImage(ctx context.Context, p *common.Principal, image string) error {
	if err := common.RequirePrincipal(p); err != nil {
		return err
	}
	if err := s.repo.UpdateImage(ctx, p.UserID, models.NullIfEmpty(&image)); err != nil {
		return apperror.Persistence("Could not update image", err)
	}
	return nil
}

func (s *AuthService) issue(u *models.User) (*AuthResponse, error) {
	sub := token.Subject{UserID: u.ID, Role: string(u.Role), Email: u.Email, Name: u.Name}

	access, err := token.GenerateJWT(sub, s.opts.AccessTokenSecret, s.opts.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, apperror.Persistence("Could not sign in", fmt.Errorf("access token generation failed: %w", err))
	}
	refresh, err := token.GenerateRefreshToken(sub, s.opts.RefreshTokenSecret, s.opts.RefreshTokenExpiryDays)
	if err != nil {
		return nil, apperror.Persistence("Could not sign in", fmt.Errorf("refresh token generation failed: %w", err))
	}
	return &AuthResponse{AccessToken: access, RefreshToken: refresh, User: FilterUserRecord(u)}, nil
}
