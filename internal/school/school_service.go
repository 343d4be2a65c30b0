package school

import (
	"context"
	"log"
	"strings"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/relation"
	"github.com/Valentina9990/top-talent/pkg/apperror"
)

const (
	notFoundOrForbidden = "Not found or not permitted"
	notOnRoster         = "Player not found or not on this roster"
)

type SchoolService struct {
	repo SchoolRepository
}

func NewSchoolService(repo SchoolRepository) *SchoolService {
	return &SchoolService{repo: repo}
}

// SearchSchools never fails: a persistence error is logged and the directory
// shows an empty list. Missing counts are reported as zero.
func (s *SchoolService) SearchSchools(ctx context.Context, f SearchFilters) []SchoolView {
	users, err := s.repo.SearchSchools(ctx,
		strings.TrimSpace(f.Name), strings.TrimSpace(f.Department), strings.TrimSpace(f.City))
	if err != nil {
		log.Printf("search schools: %v", err)
		return []SchoolView{}
	}

	filtered := FilterSchools(users, f)
	ids := make([]string, 0, len(filtered))
	for _, u := range filtered {
		ids = append(ids, u.SchoolProfile.ID)
	}
	counts, err := s.repo.CountBySchool(ctx, ids)
	if err != nil {
		log.Printf("count school members: %v", err)
		return []SchoolView{}
	}

	views := make([]SchoolView, 0, len(filtered))
	for _, u := range filtered {
		views = append(views, NewSchoolView(u, counts[u.SchoolProfile.ID]))
	}
	return views
}

// ListDepartments returns the distinct departments schools are in.
func (s *SchoolService) ListDepartments(ctx context.Context) []string {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		log.Printf("list departments: %v", err)
		return []string{}
	}
	return departments
}

// GetSchoolProfile returns the school of userID, or of the caller when
// userID is empty.
func (s *SchoolService) GetSchoolProfile(ctx context.Context, p *common.Principal, userID string) (*models.SchoolProfile, error) {
	if userID == "" {
		if err := common.RequirePrincipal(p); err != nil {
			return nil, err
		}
		userID = p.UserID
	}

	school, err := s.repo.GetSchoolDetails(ctx, userID)
	if err != nil {
		return nil, apperror.Persistence("Could not load school profile", err)
	}
	if school == nil {
		return nil, apperror.NotFound("School profile not found")
	}
	return school, nil
}

// ownSchool resolves the caller's school profile.
func (s *SchoolService) ownSchool(ctx context.Context, p *common.Principal) (*models.SchoolProfile, error) {
	if err := common.RequireRole(p, models.RoleSchool); err != nil {
		return nil, err
	}
	school, err := s.repo.GetSchoolByUserID(ctx, p.UserID)
	if err != nil {
		return nil, apperror.Persistence("Could not load school profile", err)
	}
	if school == nil {
		return nil, apperror.NotFound("School profile not found")
	}
	return school, nil
}

// UpdateSchoolProfile patches the caller's existing profile. Scalars and
// categories commit together or not at all.
func (s *SchoolService) UpdateSchoolProfile(ctx context.Context, p *common.Principal, in UpdateProfileInput) (*models.SchoolProfile, error) {
	school, err := s.ownSchool(ctx, p)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo SchoolRepository) error {
		if err := repo.UpdateSchool(ctx, school.ID, in.fields()); err != nil {
			return err
		}
		if in.CategoryIDs != nil {
			return repo.ReplaceCategories(ctx, school.ID, *in.CategoryIDs)
		}
		return nil
	})
	if err != nil {
		return nil, relation.ToAppError(err, "category_ids", "Could not update school profile")
	}

	return s.GetSchoolProfile(ctx, p, p.UserID)
}

func (s *SchoolService) GetSchoolPlayers(ctx context.Context, p *common.Principal) ([]models.PlayerProfile, error) {
	school, err := s.ownSchool(ctx, p)
	if err != nil {
		return nil, err
	}
	players, err := s.repo.ListRoster(ctx, school.ID)
	if err != nil {
		return nil, apperror.Persistence("Could not load players", err)
	}
	return players, nil
}

// AddPlayerToSchool puts the player registered under email on the caller's
// roster, creating an empty profile first if needed. Adding a player who is
// already on this roster succeeds again.
func (s *SchoolService) AddPlayerToSchool(ctx context.Context, p *common.Principal, email string) (*models.PlayerProfile, error) {
	school, err := s.ownSchool(ctx, p)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperror.Persistence("Could not add player", err)
	}
	if user == nil {
		return nil, apperror.NotFound("No player found with that email")
	}
	if user.Role != models.RolePlayer {
		return nil, apperror.Validation("The user is not a player", map[string]string{
			"email": "The user is not a player",
		})
	}

	var playerID string
	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo SchoolRepository) error {
		profile, err := repo.GetPlayerByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = &models.PlayerProfile{UserID: user.ID}
			if err := repo.CreatePlayer(ctx, profile); err != nil {
				return err
			}
		}
		if profile.SchoolID != nil && *profile.SchoolID != school.ID {
			return apperror.Conflict("The player already belongs to another school")
		}
		playerID = profile.ID
		return repo.UpdatePlayer(ctx, profile.ID, map[string]interface{}{
			"school_id":       school.ID,
			"school_verified": true,
		})
	})
	if err != nil {
		return nil, relation.ToAppError(err, "email", "Could not add player")
	}

	return s.rosterPlayer(ctx, playerID)
}

// onRoster loads a player and checks it is on school's roster.
func (s *SchoolService) onRoster(ctx context.Context, school *models.SchoolProfile, playerID string) (*models.PlayerProfile, error) {
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, apperror.Persistence("Could not load player", err)
	}
	if player == nil || player.SchoolID == nil || *player.SchoolID != school.ID {
		return nil, apperror.NotFound(notOnRoster)
	}
	return player, nil
}

func (s *SchoolService) rosterPlayer(ctx context.Context, playerID string) (*models.PlayerProfile, error) {
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, apperror.Persistence("Could not load player", err)
	}
	if player == nil {
		return nil, apperror.NotFound(notOnRoster)
	}
	return player, nil
}

func (s *SchoolService) RemovePlayerFromSchool(ctx context.Context, p *common.Principal, playerID string) error {
	school, err := s.ownSchool(ctx, p)
	if err != nil {
		return err
	}
	if _, err := s.onRoster(ctx, school, playerID); err != nil {
		return err
	}
	err = s.repo.UpdatePlayer(ctx, playerID, map[string]interface{}{
		"school_id":       nil,
		"school_verified": false,
	})
	if err != nil {
		return apperror.Persistence("Could not remove player", err)
	}
	return nil
}

// UpdateSchoolPlayerData patches a player on the caller's roster.
func (s *SchoolService) UpdateSchoolPlayerData(ctx context.Context, p *common.Principal, playerID string, in UpdatePlayerInput) (*models.PlayerProfile, error) {
	school, err := s.ownSchool(ctx, p)
	if err != nil {
		return nil, err
	}
	if _, err := s.onRoster(ctx, school, playerID); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo SchoolRepository) error {
		if id := models.NullIfEmpty(in.CategoryID); id != nil {
			ok, err := repo.CategoryExists(ctx, *id)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.Validation("", map[string]string{"category_id": "Unknown category"})
			}
		}
		if err := repo.UpdatePlayer(ctx, playerID, in.fields()); err != nil {
			return err
		}
		if in.PositionIDs != nil {
			return repo.ReplacePlayerPositions(ctx, playerID, *in.PositionIDs)
		}
		return nil
	})
	if err != nil {
		return nil, relation.ToAppError(err, "position_ids", "Could not update player")
	}

	return s.rosterPlayer(ctx, playerID)
}

// ListPosts never fails; an empty schoolID lists every school's posts.
func (s *SchoolService) ListPosts(ctx context.Context, schoolID string) []models.SchoolPost {
	posts, err := s.repo.ListPosts(ctx, strings.TrimSpace(schoolID))
	if err != nil {
		log.Printf("list school posts: %v", err)
		return []models.SchoolPost{}
	}
	return posts
}

func (s *SchoolService) CreatePost(ctx context.Context, p *common.Principal, in CreatePostInput) (*models.SchoolPost, error) {
	school, err := s.ownSchool(ctx, p)
	if err != nil {
		return nil, err
	}
	post := in.post(school.ID)
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, apperror.Persistence("Could not create post", err)
	}
	created, err := s.repo.GetPost(ctx, post.ID)
	if err != nil || created == nil {
		return post, nil
	}
	return created, nil
}

// ownedPost loads the post and checks the caller's school wrote it. A
// missing row and someone else's row fail the same way.
func (s *SchoolService) ownedPost(ctx context.Context, p *common.Principal, id string) (*models.SchoolPost, error) {
	if err := common.RequireRole(p, models.RoleSchool); err != nil {
		return nil, err
	}
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, apperror.Persistence("Could not load post", err)
	}
	if post == nil || post.School == nil || post.School.UserID != p.UserID {
		return nil, apperror.NotFound(notFoundOrForbidden)
	}
	return post, nil
}

func (s *SchoolService) UpdatePost(ctx context.Context, p *common.Principal, id string, in UpdatePostInput) (*models.SchoolPost, error) {
	if _, err := s.ownedPost(ctx, p, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePost(ctx, id, in.fields()); err != nil {
		return nil, apperror.Persistence("Could not update post", err)
	}
	post, err := s.repo.GetPost(ctx, id)
	if err != nil || post == nil {
		return nil, apperror.Persistence("Could not update post", err)
	}
	return post, nil
}

func (s *SchoolService) DeletePost(ctx context.Context, p *common.Principal, id string) error {
	if _, err := s.ownedPost(ctx, p, id); err != nil {
		return err
	}
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return apperror.Persistence("Could not delete post", err)
	}
	return nil
}
