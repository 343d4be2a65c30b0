package school

import (
	"context"
	"errors"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/relation"
	"github.com/Valentina9990/top-talent/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchoolRepository covers school profiles, their roster and their posts.
// Single-row lookups return (nil, nil) when nothing matches.
type SchoolRepository interface {
	SearchSchools(ctx context.Context, name, department, city string) ([]models.User, error)
	CountBySchool(ctx context.Context, schoolIDs []string) (map[string]Counts, error)
	ListDepartments(ctx context.Context) ([]string, error)

	GetSchoolByUserID(ctx context.Context, userID string) (*models.SchoolProfile, error)
	GetSchoolDetails(ctx context.Context, userID string) (*models.SchoolProfile, error)
	UpdateSchool(ctx context.Context, schoolID string, fields map[string]interface{}) error
	ReplaceCategories(ctx context.Context, schoolID string, categoryIDs []string) error

	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetPlayerByUserID(ctx context.Context, userID string) (*models.PlayerProfile, error)
	GetPlayer(ctx context.Context, playerID string) (*models.PlayerProfile, error)
	CreatePlayer(ctx context.Context, profile *models.PlayerProfile) error
	UpdatePlayer(ctx context.Context, playerID string, fields map[string]interface{}) error
	CategoryExists(ctx context.Context, categoryID string) (bool, error)
	ReplacePlayerPositions(ctx context.Context, playerID string, positionIDs []string) error
	ListRoster(ctx context.Context, schoolID string) ([]models.PlayerProfile, error)

	ListPosts(ctx context.Context, schoolID string) ([]models.SchoolPost, error)
	CreatePost(ctx context.Context, post *models.SchoolPost) error
	GetPost(ctx context.Context, id string) (*models.SchoolPost, error)
	UpdatePost(ctx context.Context, id string, fields map[string]interface{}) error
	DeletePost(ctx context.Context, id string) error

	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SchoolRepository) error) error
}

type schoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "image")
}

// SearchSchools runs the SQL half of the directory search: SCHOOL users with
// a profile, optionally narrowed by name, department and city substrings.
func (r *schoolRepository) SearchSchools(ctx context.Context, name, department, city string) ([]models.User, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN school_profiles ON school_profiles.user_id = users.id").
		Where("users.role = ?", models.RoleSchool)

	if name != "" {
		query = query.Where("LOWER(users.name) LIKE ?", utils.ContainsPattern(name))
	}
	if department != "" {
		query = query.Where("LOWER(school_profiles.department) LIKE ?", utils.ContainsPattern(department))
	}
	if city != "" {
		query = query.Where("LOWER(school_profiles.city) LIKE ?", utils.ContainsPattern(city))
	}

	var users []models.User
	err := query.
		Preload("SchoolProfile").
		Preload("SchoolProfile.Categories").
		Order("users.created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

type countRow struct {
	SchoolID string
	N        int
}

// CountBySchool returns roster and post counts for each school id. Schools
// with neither are absent from the map.
func (r *schoolRepository) CountBySchool(ctx context.Context, schoolIDs []string) (map[string]Counts, error) {
	counts := make(map[string]Counts, len(schoolIDs))
	if len(schoolIDs) == 0 {
		return counts, nil
	}

	var players []countRow
	if err := r.db.WithContext(ctx).Model(&models.PlayerProfile{}).
		Select("school_id, COUNT(*) AS n").
		Where("school_id IN ?", schoolIDs).
		Group("school_id").
		Scan(&players).Error; err != nil {
		return nil, err
	}

	var posts []countRow
	if err := r.db.WithContext(ctx).Model(&models.SchoolPost{}).
		Select("school_id, COUNT(*) AS n").
		Where("school_id IN ?", schoolIDs).
		Group("school_id").
		Scan(&posts).Error; err != nil {
		return nil, err
	}

	for _, row := range players {
		c := counts[row.SchoolID]
		c.Players = row.N
		counts[row.SchoolID] = c
	}
	for _, row := range posts {
		c := counts[row.SchoolID]
		c.Posts = row.N
		counts[row.SchoolID] = c
	}
	return counts, nil
}

func (r *schoolRepository) ListDepartments(ctx context.Context) ([]string, error) {
	var departments []string
	err := r.db.WithContext(ctx).Model(&models.SchoolProfile{}).
		Where("department IS NOT NULL").
		Distinct("department").
		Order("department asc").
		Pluck("department", &departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *schoolRepository) GetSchoolByUserID(ctx context.Context, userID string) (*models.SchoolProfile, error) {
	var school models.SchoolProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &school, nil
}

// GetSchoolDetails loads the profile with its user summary and categories.
func (r *schoolRepository) GetSchoolDetails(ctx context.Context, userID string) (*models.SchoolProfile, error) {
	var school models.SchoolProfile
	err := r.db.WithContext(ctx).
		Preload("User", userSummary).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Where("user_id = ?", userID).
		First(&school).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &school, nil
}

func (r *schoolRepository) UpdateSchool(ctx context.Context, schoolID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.SchoolProfile{}).Where("id = ?", schoolID).Updates(fields).Error
}

func (r *schoolRepository) ReplaceCategories(ctx context.Context, schoolID string, categoryIDs []string) error {
	return relation.ReplaceLinks(r.db.WithContext(ctx), relation.SchoolCategories, schoolID, categoryIDs)
}

func (r *schoolRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *schoolRepository) GetPlayerByUserID(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	var profile models.PlayerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetPlayer loads a player profile as the roster shows it.
func (r *schoolRepository) GetPlayer(ctx context.Context, playerID string) (*models.PlayerProfile, error) {
	var profile models.PlayerProfile
	err := r.db.WithContext(ctx).
		Preload("User", userSummary).
		Preload("Positions").
		Preload("Category").
		Where("id = ?", playerID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *schoolRepository) CreatePlayer(ctx context.Context, profile *models.PlayerProfile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
}

func (r *schoolRepository) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	return relation.Exists(r.db.WithContext(ctx), "categories", []string{categoryID})
}

func (r *schoolRepository) UpdatePlayer(ctx context.Context, playerID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.PlayerProfile{}).Where("id = ?", playerID).Updates(fields).Error
}

func (r *schoolRepository) ReplacePlayerPositions(ctx context.Context, playerID string, positionIDs []string) error {
	return relation.ReplaceLinks(r.db.WithContext(ctx), relation.PlayerPositions, playerID, positionIDs)
}

func (r *schoolRepository) ListRoster(ctx context.Context, schoolID string) ([]models.PlayerProfile, error) {
	var players []models.PlayerProfile
	err := r.db.WithContext(ctx).
		Preload("User", userSummary).
		Preload("Positions").
		Preload("Category").
		Where("school_id = ?", schoolID).
		Order("created_at desc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func postAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("School").Preload("School.User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "image")
	})
}

// ListPosts returns posts newest first, for one school or for all of them
// when schoolID is empty.
func (r *schoolRepository) ListPosts(ctx context.Context, schoolID string) ([]models.SchoolPost, error) {
	query := postAuthor(r.db.WithContext(ctx))
	if schoolID != "" {
		query = query.Where("school_id = ?", schoolID)
	}
	var posts []models.SchoolPost
	if err := query.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *schoolRepository) CreatePost(ctx context.Context, post *models.SchoolPost) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// GetPost loads a post with its school so callers can check ownership.
func (r *schoolRepository) GetPost(ctx context.Context, id string) (*models.SchoolPost, error) {
	var post models.SchoolPost
	if err := postAuthor(r.db.WithContext(ctx)).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *schoolRepository) UpdatePost(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.SchoolPost{}).Where("id = ?", id).Updates(fields).Error
}

func (r *schoolRepository) DeletePost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SchoolPost{}).Error
}

// WithTransaction executes a function within a database transaction.
func (r *schoolRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SchoolRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &schoolRepository{db: tx})
	})
}
