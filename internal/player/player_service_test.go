package player

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/relation"
	"github.com/Valentina9990/top-talent/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlayerRepository is a mock implementation of PlayerRepository.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) SearchPlayers(ctx context.Context, name, zone string) ([]models.User, error) {
	args := m.Called(ctx, name, zone)
	if v := args.Get(0); v != nil {
		return v.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerRepository) GetProfileByUserID(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.PlayerProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerRepository) GetProfileDetails(ctx context.Context, userID string) (*models.PlayerProfile, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.PlayerProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerRepository) CreateProfile(ctx context.Context, profile *models.PlayerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPlayerRepository) UpdateProfile(ctx context.Context, profileID string, fields map[string]interface{}) error {
	args := m.Called(ctx, profileID, fields)
	return args.Error(0)
}

func (m *MockPlayerRepository) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlayerRepository) ReplacePositions(ctx context.Context, profileID string, positionIDs []string) error {
	args := m.Called(ctx, profileID, positionIDs)
	return args.Error(0)
}

func (m *MockPlayerRepository) UpdateUserImage(ctx context.Context, userID string, image *string) error {
	args := m.Called(ctx, userID, image)
	return args.Error(0)
}

func (m *MockPlayerRepository) ListVideos(ctx context.Context, playerID string) ([]models.PlayerVideo, error) {
	args := m.Called(ctx, playerID)
	if v := args.Get(0); v != nil {
		return v.([]models.PlayerVideo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerRepository) CreateVideo(ctx context.Context, video *models.PlayerVideo) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetVideo(ctx context.Context, id string) (*models.PlayerVideo, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.PlayerVideo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerRepository) UpdateVideo(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPlayerRepository) DeleteVideo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlayerRepository) CreateAchievement(ctx context.Context, achievement *models.PlayerAchievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetAchievement(ctx context.Context, id string) (*models.PlayerAchievement, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.PlayerAchievement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlayerRepository) UpdateAchievement(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPlayerRepository) DeleteAchievement(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTransaction runs fn against the mock itself so expectations still apply.
func (m *MockPlayerRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PlayerRepository) error) error {
	return fn(ctx, m)
}

var (
	ana    = &common.Principal{UserID: "user-ana", Role: models.RolePlayer, Name: "Ana"}
	bruno  = &common.Principal{UserID: "user-bruno", Role: models.RolePlayer, Name: "Bruno"}
	school = &common.Principal{UserID: "user-club", Role: models.RoleSchool, Name: "Club"}
)

func strPtr(s string) *string { return &s }

func TestUpdatePlayerProfile_Guards(t *testing.T) {
	service := NewPlayerService(new(MockPlayerRepository))

	_, err := service.UpdatePlayerProfile(context.Background(), nil, UpdateProfileInput{})
	assert.True(t, apperror.Is(err, apperror.KindUnauthenticated))

	_, err = service.UpdatePlayerProfile(context.Background(), school, UpdateProfileInput{})
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
}

func TestUpdatePlayerProfile_CreatesWhenAbsent(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	positions := []string{"pos-forward"}
	input := UpdateProfileInput{
		Team:          strPtr("Atlético Sur"),
		Zone:          strPtr(""),
		PreferredFoot: strPtr("LEFT"),
		Goals:         intPtr(12),
		PositionIDs:   &positions,
	}

	repo.On("GetProfileByUserID", ctx, "user-ana").Return(nil, nil)
	repo.On("CreateProfile", ctx, mock.MatchedBy(func(p *models.PlayerProfile) bool {
		return p.UserID == "user-ana" &&
			p.Team != nil && *p.Team == "Atlético Sur" &&
			p.Zone == nil &&
			p.PreferredFoot != nil && *p.PreferredFoot == models.FootLeft &&
			p.Goals == 12 && p.Assists == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.PlayerProfile).ID = "profile-ana"
	}).Return(nil)
	repo.On("ReplacePositions", ctx, "profile-ana", positions).Return(nil)
	repo.On("GetProfileDetails", ctx, "user-ana").Return(&models.PlayerProfile{
		Base:   models.Base{ID: "profile-ana"},
		UserID: "user-ana",
		Goals:  12,
	}, nil)

	profile, err := service.UpdatePlayerProfile(ctx, ana, input)
	require.NoError(t, err)
	assert.Equal(t, "profile-ana", profile.ID)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePlayerProfile_CreateSkipsEmptyPositions(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	empty := []string{}
	repo.On("GetProfileByUserID", ctx, "user-ana").Return(nil, nil)
	repo.On("CreateProfile", ctx, mock.Anything).Return(nil)
	repo.On("GetProfileDetails", ctx, "user-ana").Return(&models.PlayerProfile{UserID: "user-ana"}, nil)

	_, err := service.UpdatePlayerProfile(ctx, ana, UpdateProfileInput{PositionIDs: &empty})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "ReplacePositions", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePlayerProfile_UpdatesExisting(t *testing.T) {
	existing := &models.PlayerProfile{Base: models.Base{ID: "profile-ana"}, UserID: "user-ana", Goals: 7}

	t.Run("omitted positions are left alone and omitted stats kept", func(t *testing.T) {
		repo := new(MockPlayerRepository)
		service := NewPlayerService(repo)
		ctx := context.Background()

		repo.On("GetProfileByUserID", ctx, "user-ana").Return(existing, nil)
		repo.On("UpdateProfile", ctx, "profile-ana", mock.MatchedBy(func(f map[string]interface{}) bool {
			_, hasGoals := f["goals"]
			team, _ := f["team"].(*string)
			bio, bioSet := f["bio"]
			return !hasGoals && f["assists"] == 3 &&
				team != nil && *team == "Club Norte" &&
				bioSet && bio.(*string) == nil
		})).Return(nil)
		repo.On("GetProfileDetails", ctx, "user-ana").Return(existing, nil)

		_, err := service.UpdatePlayerProfile(ctx, ana, UpdateProfileInput{
			Team:    strPtr("Club Norte"),
			Assists: intPtr(3),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "ReplacePositions", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty positions clear the set", func(t *testing.T) {
		repo := new(MockPlayerRepository)
		service := NewPlayerService(repo)
		ctx := context.Background()

		empty := []string{}
		repo.On("GetProfileByUserID", ctx, "user-ana").Return(existing, nil)
		repo.On("UpdateProfile", ctx, "profile-ana", mock.Anything).Return(nil)
		repo.On("ReplacePositions", ctx, "profile-ana", empty).Return(nil)
		repo.On("GetProfileDetails", ctx, "user-ana").Return(existing, nil)

		_, err := service.UpdatePlayerProfile(ctx, ana, UpdateProfileInput{PositionIDs: &empty})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestUpdatePlayerProfile_UnknownPositionIsValidation(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	existing := &models.PlayerProfile{Base: models.Base{ID: "profile-ana"}, UserID: "user-ana"}
	ids := []string{"pos-forward", "pos-missing"}

	repo.On("GetProfileByUserID", ctx, "user-ana").Return(existing, nil)
	repo.On("UpdateProfile", ctx, "profile-ana", mock.Anything).Return(nil)
	repo.On("ReplacePositions", ctx, "profile-ana", ids).
		Return(fmt.Errorf("%w: positions", relation.ErrUnknownTarget))

	_, err := service.UpdatePlayerProfile(ctx, ana, UpdateProfileInput{PositionIDs: &ids})
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "position_ids")
	repo.AssertNotCalled(t, "GetProfileDetails", mock.Anything, mock.Anything)
}

func TestUpdatePlayerProfile_UnknownCategoryIsValidation(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	existing := &models.PlayerProfile{Base: models.Base{ID: "profile-ana"}, UserID: "user-ana"}
	missing := "cat-missing"

	repo.On("GetProfileByUserID", ctx, "user-ana").Return(existing, nil)
	repo.On("CategoryExists", ctx, "cat-missing").Return(false, nil)

	_, err := service.UpdatePlayerProfile(ctx, ana, UpdateProfileInput{CategoryID: &missing})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Unknown category", appErr.Fields["category_id"])
	repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePlayerProfile_KnownCategoryIsChecked(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	senior := "cat-senior"
	repo.On("GetProfileByUserID", ctx, "user-ana").Return(nil, nil)
	repo.On("CategoryExists", ctx, "cat-senior").Return(true, nil)
	repo.On("CreateProfile", ctx, mock.MatchedBy(func(p *models.PlayerProfile) bool {
		return p.CategoryID != nil && *p.CategoryID == "cat-senior"
	})).Return(nil)
	repo.On("GetProfileDetails", ctx, "user-ana").Return(&models.PlayerProfile{UserID: "user-ana"}, nil)

	_, err := service.UpdatePlayerProfile(ctx, ana, UpdateProfileInput{CategoryID: &senior})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdatePlayerProfile_PersistenceFailure(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	repo.On("GetProfileByUserID", ctx, "user-ana").Return(nil, errors.New("connection reset"))

	_, err := service.UpdatePlayerProfile(ctx, ana, UpdateProfileInput{})
	assert.True(t, apperror.Is(err, apperror.KindPersistence))
}

func TestGetPlayerProfile(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	repo.On("GetProfileDetails", ctx, "user-ana").Return(&models.PlayerProfile{UserID: "user-ana"}, nil)
	repo.On("GetProfileDetails", ctx, "user-ghost").Return(nil, nil)

	profile, err := service.GetPlayerProfile(ctx, nil, "user-ana")
	require.NoError(t, err)
	assert.Equal(t, "user-ana", profile.UserID)

	profile, err = service.GetPlayerProfile(ctx, ana, "")
	require.NoError(t, err)
	assert.Equal(t, "user-ana", profile.UserID)

	_, err = service.GetPlayerProfile(ctx, nil, "user-ghost")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = service.GetPlayerProfile(ctx, nil, "")
	assert.True(t, apperror.Is(err, apperror.KindUnauthenticated))
}

func TestSearchPlayers(t *testing.T) {
	t.Run("applies in-memory filters after the query", func(t *testing.T) {
		repo := new(MockPlayerRepository)
		service := NewPlayerService(repo)
		ctx := context.Background()

		users := []models.User{
			playerUser("ana", &models.PlayerProfile{
				Positions: []models.Position{{Name: "Delantero Centro"}},
				Category:  category(18, nil),
			}),
			playerUser("luis", &models.PlayerProfile{Positions: []models.Position{{Name: "Portero"}}}),
		}
		repo.On("SearchPlayers", ctx, "an", "norte").Return(users, nil)

		views := service.SearchPlayers(ctx, SearchFilters{Name: " an ", Zone: "norte", Position: "Delantero Centro"})
		require.Len(t, views, 1)
		assert.Equal(t, "ana", views[0].ID)
	})

	t.Run("errors become an empty list", func(t *testing.T) {
		repo := new(MockPlayerRepository)
		service := NewPlayerService(repo)
		ctx := context.Background()

		repo.On("SearchPlayers", ctx, "", "").Return(nil, errors.New("db down"))

		views := service.SearchPlayers(ctx, SearchFilters{})
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestUpdateAvatar(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	url := "https://media.example.com/images/user-ana/a.png"
	repo.On("GetProfileByUserID", ctx, "user-ana").Return(&models.PlayerProfile{Base: models.Base{ID: "profile-ana"}}, nil)
	repo.On("UpdateProfile", ctx, "profile-ana", mock.MatchedBy(func(f map[string]interface{}) bool {
		v, _ := f["avatar_url"].(*string)
		return v != nil && *v == url
	})).Return(nil)
	repo.On("UpdateUserImage", ctx, "user-ana", mock.MatchedBy(func(v *string) bool {
		return v != nil && *v == url
	})).Return(nil)

	require.NoError(t, service.UpdateAvatar(ctx, ana, url))
	repo.AssertExpectations(t)
}

func TestUpdateAvatar_NoProfile(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	repo.On("GetProfileByUserID", ctx, "user-ana").Return(nil, nil)

	err := service.UpdateAvatar(ctx, ana, "https://media.example.com/a.png")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestCreateVideo(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	repo.On("GetProfileByUserID", ctx, "user-ana").Return(nil, nil)
	repo.On("CreateProfile", ctx, mock.MatchedBy(func(p *models.PlayerProfile) bool {
		return p.UserID == "user-ana"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.PlayerProfile).ID = "profile-ana"
	}).Return(nil)
	repo.On("CreateVideo", ctx, mock.MatchedBy(func(v *models.PlayerVideo) bool {
		return v.PlayerID == "profile-ana" && v.Title != nil && *v.Title == defaultVideoTitle
	})).Return(nil)

	video, err := service.CreateVideo(ctx, ana, CreateVideoInput{VideoURL: " https://youtu.be/abc "})
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/abc", video.VideoURL)
	repo.AssertExpectations(t)
}

func TestVideoOwnership(t *testing.T) {
	video := &models.PlayerVideo{
		Base:     models.Base{ID: "video-1"},
		PlayerID: "profile-ana",
		Player:   &models.PlayerProfile{Base: models.Base{ID: "profile-ana"}, UserID: "user-ana"},
	}

	t.Run("owner deletes", func(t *testing.T) {
		repo := new(MockPlayerRepository)
		service := NewPlayerService(repo)
		ctx := context.Background()

		repo.On("GetVideo", ctx, "video-1").Return(video, nil)
		repo.On("DeleteVideo", ctx, "video-1").Return(nil)

		require.NoError(t, service.DeleteVideo(ctx, ana, "video-1"))
		repo.AssertExpectations(t)
	})

	t.Run("someone else gets not found", func(t *testing.T) {
		repo := new(MockPlayerRepository)
		service := NewPlayerService(repo)
		ctx := context.Background()

		repo.On("GetVideo", ctx, "video-1").Return(video, nil)

		err := service.DeleteVideo(ctx, bruno, "video-1")
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		repo.AssertNotCalled(t, "DeleteVideo", mock.Anything, mock.Anything)
	})

	t.Run("missing video gets the same answer", func(t *testing.T) {
		repo := new(MockPlayerRepository)
		service := NewPlayerService(repo)
		ctx := context.Background()

		repo.On("GetVideo", ctx, "video-x").Return(nil, nil)

		_, err := service.UpdateVideo(ctx, ana, "video-x", UpdateVideoInput{Title: strPtr("x")})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})

	t.Run("anonymous caller", func(t *testing.T) {
		service := NewPlayerService(new(MockPlayerRepository))
		err := service.DeleteVideo(context.Background(), nil, "video-1")
		assert.True(t, apperror.Is(err, apperror.KindUnauthenticated))
	})
}

func TestUpdateAchievement_Patch(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	achievement := &models.PlayerAchievement{
		Base:   models.Base{ID: "ach-1"},
		Title:  "Goleador",
		Player: &models.PlayerProfile{UserID: "user-ana"},
	}
	repo.On("GetAchievement", ctx, "ach-1").Return(achievement, nil)
	repo.On("UpdateAchievement", ctx, "ach-1", mock.MatchedBy(func(f map[string]interface{}) bool {
		_, hasDate := f["date"]
		_, hasDesc := f["description"]
		return f["title"] == "Campeón regional" && !hasDate && !hasDesc
	})).Return(nil)

	_, err := service.UpdateAchievement(ctx, ana, "ach-1", AchievementInput{Title: " Campeón regional "})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAchievement(t *testing.T) {
	repo := new(MockPlayerRepository)
	service := NewPlayerService(repo)
	ctx := context.Background()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetProfileByUserID", ctx, "user-ana").Return(&models.PlayerProfile{Base: models.Base{ID: "profile-ana"}}, nil)
	repo.On("CreateAchievement", ctx, mock.MatchedBy(func(a *models.PlayerAchievement) bool {
		return a.PlayerID == "profile-ana" && a.Title == "MVP" && !a.Verified && a.Date.Equal(date)
	})).Return(nil)

	_, err := service.CreateAchievement(ctx, ana, AchievementInput{Title: "MVP", Date: &date})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = service.CreateAchievement(ctx, school, AchievementInput{Title: "MVP"})
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
}
