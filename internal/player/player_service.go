package player

import (
	"context"
	"log"
	"strings"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/relation"
	"github.com/Valentina9990/top-talent/pkg/apperror"
)

const notFoundOrForbidden = "Not found or not permitted"

type PlayerService struct {
	repo PlayerRepository
}

func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// SearchPlayers never fails: a persistence error is logged and the directory
// shows an empty list.
func (s *PlayerService) SearchPlayers(ctx context.Context, f SearchFilters) []PlayerView {
	users, err := s.repo.SearchPlayers(ctx, strings.TrimSpace(f.Name), strings.TrimSpace(f.Zone))
	if err != nil {
		log.Printf("search players: %v", err)
		return []PlayerView{}
	}

	filtered := FilterPlayers(users, f)
	views := make([]PlayerView, 0, len(filtered))
	for _, u := range filtered {
		views = append(views, NewPlayerView(u))
	}
	return views
}

// GetPlayerProfile returns the profile of userID, or of the caller when
// userID is empty.
func (s *PlayerService) GetPlayerProfile(ctx context.Context, p *common.Principal, userID string) (*models.PlayerProfile, error) {
	if userID == "" {
		if err := common.RequirePrincipal(p); err != nil {
			return nil, err
		}
		userID = p.UserID
	}

	profile, err := s.repo.GetProfileDetails(ctx, userID)
	if err != nil {
		return nil, apperror.Persistence("Could not load profile", err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Player profile not found")
	}
	return profile, nil
}

// UpdatePlayerProfile creates the caller's profile if it does not exist yet,
// otherwise applies the form. Scalars and positions commit together or not
// at all.
func (s *PlayerService) UpdatePlayerProfile(ctx context.Context, p *common.Principal, in UpdateProfileInput) (*models.PlayerProfile, error) {
	if err := common.RequireRole(p, models.RolePlayer); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProfileByUserID(ctx, p.UserID)
	if err != nil {
		return nil, apperror.Persistence("Could not update profile", err)
	}

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo PlayerRepository) error {
		if err := checkCategory(ctx, repo, in.CategoryID); err != nil {
			return err
		}
		if existing == nil {
			profile := in.newProfile(p.UserID)
			if err := repo.CreateProfile(ctx, profile); err != nil {
				return err
			}
			if in.PositionIDs != nil && len(*in.PositionIDs) > 0 {
				return repo.ReplacePositions(ctx, profile.ID, *in.PositionIDs)
			}
			return nil
		}

		if err := repo.UpdateProfile(ctx, existing.ID, in.updateFields()); err != nil {
			return err
		}
		if in.PositionIDs != nil {
			return repo.ReplacePositions(ctx, existing.ID, *in.PositionIDs)
		}
		return nil
	})
	if err != nil {
		return nil, relation.ToAppError(err, "position_ids", "Could not update profile")
	}

	return s.GetPlayerProfile(ctx, p, p.UserID)
}

// checkCategory rejects a category id with no row. A blank id clears the
// category and needs no check.
func checkCategory(ctx context.Context, repo PlayerRepository, categoryID *string) error {
	id := models.NullIfEmpty(categoryID)
	if id == nil {
		return nil
	}
	ok, err := repo.CategoryExists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.Validation("", map[string]string{"category_id": "Unknown category"})
	}
	return nil
}

// ensureProfile returns the caller's profile, creating an empty one if needed.
func (s *PlayerService) ensureProfile(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	profile = &models.PlayerProfile{UserID: userID}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *PlayerService) requireOwnProfile(ctx context.Context, p *common.Principal) (*models.PlayerProfile, error) {
	if err := common.RequireRole(p, models.RolePlayer); err != nil {
		return nil, err
	}
	profile, err := s.repo.GetProfileByUserID(ctx, p.UserID)
	if err != nil {
		return nil, apperror.Persistence("Could not load profile", err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Player profile not found")
	}
	return profile, nil
}

// UpdateAvatar sets the profile avatar and mirrors it onto the user image.
func (s *PlayerService) UpdateAvatar(ctx context.Context, p *common.Principal, url string) error {
	profile, err := s.requireOwnProfile(ctx, p)
	if err != nil {
		return err
	}

	image := models.NullIfEmpty(&url)
	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo PlayerRepository) error {
		if err := repo.UpdateProfile(ctx, profile.ID, map[string]interface{}{"avatar_url": image}); err != nil {
			return err
		}
		return repo.UpdateUserImage(ctx, p.UserID, image)
	})
	if err != nil {
		return apperror.Persistence("Could not update avatar", err)
	}
	return nil
}

func (s *PlayerService) UpdateProfileVideo(ctx context.Context, p *common.Principal, url string) error {
	profile, err := s.requireOwnProfile(ctx, p)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateProfile(ctx, profile.ID, map[string]interface{}{"profile_video_url": models.NullIfEmpty(&url)}); err != nil {
		return apperror.Persistence("Could not update profile video", err)
	}
	return nil
}

func (s *PlayerService) ListMyVideos(ctx context.Context, p *common.Principal) ([]models.PlayerVideo, error) {
	profile, err := s.requireOwnProfile(ctx, p)
	if err != nil {
		return nil, err
	}
	videos, err := s.repo.ListVideos(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Persistence("Could not load videos", err)
	}
	return videos, nil
}

func (s *PlayerService) CreateVideo(ctx context.Context, p *common.Principal, in CreateVideoInput) (*models.PlayerVideo, error) {
	if err := common.RequireRole(p, models.RolePlayer); err != nil {
		return nil, err
	}
	profile, err := s.ensureProfile(ctx, p.UserID)
	if err != nil {
		return nil, apperror.Persistence("Could not add video", err)
	}

	title := models.NullIfEmpty(in.Title)
	if title == nil {
		title = models.StringPtr(defaultVideoTitle)
	}
	video := &models.PlayerVideo{
		PlayerID:    profile.ID,
		VideoURL:    strings.TrimSpace(in.VideoURL),
		Title:       title,
		Description: models.NullIfEmpty(in.Description),
	}
	if err := s.repo.CreateVideo(ctx, video); err != nil {
		return nil, apperror.Persistence("Could not add video", err)
	}
	return video, nil
}

// ownedVideo loads the video and checks it belongs to the caller. A missing
// row and someone else's row fail the same way.
func (s *PlayerService) ownedVideo(ctx context.Context, p *common.Principal, id string) (*models.PlayerVideo, error) {
	if err := common.RequirePrincipal(p); err != nil {
		return nil, err
	}
	video, err := s.repo.GetVideo(ctx, id)
	if err != nil {
		return nil, apperror.Persistence("Could not load video", err)
	}
	if video == nil || video.Player == nil || video.Player.UserID != p.UserID {
		return nil, apperror.NotFound(notFoundOrForbidden)
	}
	return video, nil
}

func (s *PlayerService) UpdateVideo(ctx context.Context, p *common.Principal, id string, in UpdateVideoInput) (*models.PlayerVideo, error) {
	if _, err := s.ownedVideo(ctx, p, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateVideo(ctx, id, in.fields()); err != nil {
		return nil, apperror.Persistence("Could not update video", err)
	}
	video, err := s.repo.GetVideo(ctx, id)
	if err != nil || video == nil {
		return nil, apperror.Persistence("Could not update video", err)
	}
	return video, nil
}

func (s *PlayerService) DeleteVideo(ctx context.Context, p *common.Principal, id string) error {
	if _, err := s.ownedVideo(ctx, p, id); err != nil {
		return err
	}
	if err := s.repo.DeleteVideo(ctx, id); err != nil {
		return apperror.Persistence("Could not delete video", err)
	}
	return nil
}

func (s *PlayerService) CreateAchievement(ctx context.Context, p *common.Principal, in AchievementInput) (*models.PlayerAchievement, error) {
	if err := common.RequireRole(p, models.RolePlayer); err != nil {
		return nil, err
	}
	profile, err := s.ensureProfile(ctx, p.UserID)
	if err != nil {
		return nil, apperror.Persistence("Could not add achievement", err)
	}

	achievement := &models.PlayerAchievement{
		PlayerID:    profile.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: models.NullIfEmpty(in.Description),
		Date:        in.Date,
	}
	if err := s.repo.CreateAchievement(ctx, achievement); err != nil {
		return nil, apperror.Persistence("Could not add achievement", err)
	}
	return achievement, nil
}

func (s *PlayerService) ownedAchievement(ctx context.Context, p *common.Principal, id string) (*models.PlayerAchievement, error) {
	if err := common.RequirePrincipal(p); err != nil {
		return nil, err
	}
	achievement, err := s.repo.GetAchievement(ctx, id)
	if err != nil {
		return nil, apperror.Persistence("Could not load achievement", err)
	}
	if achievement == nil || achievement.Player == nil || achievement.Player.UserID != p.UserID {
		return nil, apperror.NotFound(notFoundOrForbidden)
	}
	return achievement, nil
}

func (s *PlayerService) UpdateAchievement(ctx context.Context, p *common.Principal, id string, in AchievementInput) (*models.PlayerAchievement, error) {
	if _, err := s.ownedAchievement(ctx, p, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAchievement(ctx, id, in.fields()); err != nil {
		return nil, apperror.Persistence("Could not update achievement", err)
	}
	achievement, err := s.repo.GetAchievement(ctx, id)
	if err != nil || achievement == nil {
		return nil, apperror.Persistence("Could not update achievement", err)
	}
	return achievement, nil
}

func (s *PlayerService) DeleteAchievement(ctx context.Context, p *common.Principal, id string) error {
	if _, err := s.ownedAchievement(ctx, p, id); err != nil {
		return err
	}
	if err := s.repo.DeleteAchievement(ctx, id); err != nil {
		return apperror.Persistence("Could not delete achievement", err)
	}
	return nil
}
