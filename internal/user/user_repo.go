package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Valentina9990/top-talent/internal/models"
	"gorm.io/gorm"
)

// UserRepository reads and writes accounts and their verification tokens.
// Lookups return (nil, nil) when the row does not exist.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	UpdateImage(ctx context.Context, id string, image *string) error
	MarkEmailVerified(ctx context.Context, email string, at time.Time) error

	SaveVerificationToken(ctx context.Context, t *models.VerificationToken) error
	GetVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error)
	DeleteVerificationTokens(ctx context.Context, email string) error

	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// NormalizeEmail lowercases and trims an address before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts the user together with any profile attached to it.
func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	u.Email = NormalizeEmail(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) UpdateImage(ctx context.Context, id string, image *string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("image", image).Error
}

func (r *userRepository) MarkEmailVerified(ctx context.Context, email string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", NormalizeEmail(email)).
		Update("email_verified", at).Error
}

func (r *userRepository) SaveVerificationToken(ctx context.Context, t *models.VerificationToken) error {
	t.Email = NormalizeEmail(t.Email)
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *userRepository) GetVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	var t models.VerificationToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *userRepository) DeleteVerificationTokens(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).Delete(&models.VerificationToken{}).Error
}

// WithTransaction executes a function within a database transaction.
func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &userRepository{db: tx})
	})
}
