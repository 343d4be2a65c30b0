package player

import (
	"context"
	"errors"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/relation"
	"github.com/Valentina9990/top-talent/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository covers player profiles and the rows they own.
// Single-row lookups return (nil, nil) when nothing matches.
type PlayerRepository interface {
	SearchPlayers(ctx context.Context, name, zone string) ([]models.User, error)

	GetProfileByUserID(ctx context.Context, userID string) (*models.PlayerProfile, error)
	GetProfileDetails(ctx context.Context, userID string) (*models.PlayerProfile, error)
	CreateProfile(ctx context.Context, profile *models.PlayerProfile) error
	UpdateProfile(ctx context.Context, profileID string, fields map[string]interface{}) error
	ReplacePositions(ctx context.Context, profileID string, positionIDs []string) error
	CategoryExists(ctx context.Context, categoryID string) (bool, error)
	UpdateUserImage(ctx context.Context, userID string, image *string) error

	ListVideos(ctx context.Context, playerID string) ([]models.PlayerVideo, error)
	CreateVideo(ctx context.Context, video *models.PlayerVideo) error
	GetVideo(ctx context.Context, id string) (*models.PlayerVideo, error)
	UpdateVideo(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteVideo(ctx context.Context, id string) error

	CreateAchievement(ctx context.Context, achievement *models.PlayerAchievement) error
	GetAchievement(ctx context.Context, id string) (*models.PlayerAchievement, error)
	UpdateAchievement(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteAchievement(ctx context.Context, id string) error

	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PlayerRepository) error) error
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at desc")
}

// SearchPlayers runs the SQL half of the directory search: PLAYER users with
// a profile, optionally narrowed by name and zone substrings.
func (r *playerRepository) SearchPlayers(ctx context.Context, name, zone string) ([]models.User, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN player_profiles ON player_profiles.user_id = users.id").
		Where("users.role = ?", models.RolePlayer)

	if name != "" {
		query = query.Where("LOWER(users.name) LIKE ?", utils.ContainsPattern(name))
	}
	if zone != "" {
		query = query.Where("LOWER(player_profiles.zone) LIKE ?", utils.ContainsPattern(zone))
	}

	var users []models.User
	err := query.
		Preload("PlayerProfile").
		Preload("PlayerProfile.Positions").
		Preload("PlayerProfile.Category").
		Preload("PlayerProfile.Videos", newestFirst).
		Preload("PlayerProfile.Achievements", newestFirst).
		Order("users.created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *playerRepository) GetProfileByUserID(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	var profile models.PlayerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfileDetails loads the profile with everything the profile page shows.
func (r *playerRepository) GetProfileDetails(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	var profile models.PlayerProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Positions").
		Preload("Category").
		Preload("School").
		Preload("Videos", newestFirst).
		Preload("Achievements", newestFirst).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// CreateProfile inserts the profile row only; positions go through ReplacePositions.
func (r *playerRepository) CreateProfile(ctx context.Context, profile *models.PlayerProfile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r *playerRepository) UpdateProfile(ctx context.Context, profileID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.PlayerProfile{}).Where("id = ?", profileID).Updates(fields).Error
}

func (r *playerRepository) ReplacePositions(ctx context.Context, profileID string, positionIDs []string) error {
	return relation.ReplaceLinks(r.db.WithContext(ctx), relation.PlayerPositions, profileID, positionIDs)
}

func (r *playerRepository) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	return relation.Exists(r.db.WithContext(ctx), "categories", []string{categoryID})
}

func (r *playerRepository) UpdateUserImage(ctx context.Context, userID string, image *string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("image", image).Error
}

func (r *playerRepository) ListVideos(ctx context.Context, playerID string) ([]models.PlayerVideo, error) {
	var videos []models.PlayerVideo
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Order("created_at desc").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *playerRepository) CreateVideo(ctx context.Context, video *models.PlayerVideo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(video).Error
}

// GetVideo loads a video with its owning profile so callers can check ownership.
func (r *playerRepository) GetVideo(ctx context.Context, id string) (*models.PlayerVideo, error) {
	var video models.PlayerVideo
	if err := r.db.WithContext(ctx).Preload("Player").Where("id = ?", id).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

func (r *playerRepository) UpdateVideo(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.PlayerVideo{}).Where("id = ?", id).Updates(fields).Error
}

func (r *playerRepository) DeleteVideo(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PlayerVideo{}).Error
}

func (r *playerRepository) CreateAchievement(ctx context.Context, achievement *models.PlayerAchievement) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(achievement).Error
}

func (r *playerRepository) GetAchievement(ctx context.Context, id string) (*models.PlayerAchievement, error) {
	var achievement models.PlayerAchievement
	if err := r.db.WithContext(ctx).Preload("Player").Where("id = ?", id).First(&achievement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &achievement, nil
}

func (r *playerRepository) UpdateAchievement(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.PlayerAchievement{}).Where("id = ?", id).Updates(fields).Error
}

func (r *playerRepository) DeleteAchievement(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PlayerAchievement{}).Error
}

// WithTransaction executes a function within a database transaction.
func (r *playerRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PlayerRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &playerRepository{db: tx})
	})
}
