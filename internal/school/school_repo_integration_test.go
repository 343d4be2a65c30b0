//go:build integration
// +build integration

package school

import (
	"context"
	"testing"

	"github.com/Valentina9990/top-talent/internal/common"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/testdb"
	"github.com/Valentina9990/top-talent/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolRosterRoundTrip(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	service := NewSchoolService(NewSchoolRepository(db))

	clubUser := testdb.CreateUser(t, db, "norte@example.com", "Escuela Norte", models.RoleSchool)
	require.NoError(t, db.Create(&models.SchoolProfile{UserID: clubUser.ID, OfficialName: strPtr("Escuela Norte")}).Error)
	club := &common.Principal{UserID: clubUser.ID, Role: models.RoleSchool}

	otherUser := testdb.CreateUser(t, db, "sur@example.com", "Escuela Sur", models.RoleSchool)
	require.NoError(t, db.Create(&models.SchoolProfile{UserID: otherUser.ID}).Error)
	other := &common.Principal{UserID: otherUser.ID, Role: models.RoleSchool}

	testdb.CreateUser(t, db, "ana@example.com", "Ana", models.RolePlayer)

	sub15 := testdb.CategoryID(t, db, "Sub-15")
	sub17 := testdb.CategoryID(t, db, "Sub-17")

	t.Run("profile update with categories", func(t *testing.T) {
		categories := []string{sub15, sub17}
		school, err := service.UpdateSchoolProfile(ctx, club, UpdateProfileInput{
			Department:  strPtr("Antioquia"),
			City:        strPtr("Medellín"),
			CategoryIDs: &categories,
		})
		require.NoError(t, err)
		assert.Len(t, school.Categories, 2)
		assert.Equal(t, "Escuela Norte", *school.OfficialName)

		bad := []string{sub15, "missing"}
		_, err = service.UpdateSchoolProfile(ctx, club, UpdateProfileInput{City: strPtr("Envigado"), CategoryIDs: &bad})
		assert.True(t, apperror.Is(err, apperror.KindValidation))

		school, err = service.GetSchoolProfile(ctx, club, "")
		require.NoError(t, err)
		assert.Equal(t, "Medellín", *school.City)
		assert.Len(t, school.Categories, 2)
	})

	t.Run("departments and search", func(t *testing.T) {
		assert.Equal(t, []string{"Antioquia"}, service.ListDepartments(ctx))

		views := service.SearchSchools(ctx, SearchFilters{Department: "antio", Category: "Sub-17"})
		require.Len(t, views, 1)
		assert.Equal(t, clubUser.ID, views[0].ID)
	})

	var playerID string
	t.Run("roster membership", func(t *testing.T) {
		player, err := service.AddPlayerToSchool(ctx, club, "ana@example.com")
		require.NoError(t, err)
		playerID = player.ID
		assert.True(t, player.SchoolVerified)

		_, err = service.AddPlayerToSchool(ctx, club, "ana@example.com")
		require.NoError(t, err)

		_, err = service.AddPlayerToSchool(ctx, other, "ana@example.com")
		assert.True(t, apperror.Is(err, apperror.KindConflict))

		roster, err := service.GetSchoolPlayers(ctx, club)
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Equal(t, "ana@example.com", roster[0].User.Email)

		views := service.SearchSchools(ctx, SearchFilters{Name: "norte"})
		require.Len(t, views, 1)
		assert.Equal(t, 1, views[0].Count.Players)
	})

	t.Run("school patches roster data", func(t *testing.T) {
		forward := testdb.PositionID(t, db, "Delantero Centro")
		positions := []string{forward}
		goals := 6

		player, err := service.UpdateSchoolPlayerData(ctx, club, playerID, UpdatePlayerInput{
			CategoryID:  &sub17,
			Goals:       &goals,
			PositionIDs: &positions,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, player.Goals)
		require.Len(t, player.Positions, 1)

		player, err = service.UpdateSchoolPlayerData(ctx, club, playerID, UpdatePlayerInput{})
		require.NoError(t, err)
		require.NotNil(t, player.CategoryID)
		assert.Equal(t, sub17, *player.CategoryID)
		assert.Len(t, player.Positions, 1)

		_, err = service.UpdateSchoolPlayerData(ctx, other, playerID, UpdatePlayerInput{Goals: &goals})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})

	t.Run("posts", func(t *testing.T) {
		post, err := service.CreatePost(ctx, club, CreatePostInput{Title: "Convocatoria", Description: "Sábado 9am"})
		require.NoError(t, err)
		require.NotNil(t, post.School)
		require.NotNil(t, post.School.User)
		assert.Equal(t, "Escuela Norte", post.School.User.Name)

		assert.True(t, apperror.Is(service.DeletePost(ctx, other, post.ID), apperror.KindNotFound))
		require.NoError(t, service.DeletePost(ctx, club, post.ID))
		assert.Empty(t, service.ListPosts(ctx, ""))
	})

	t.Run("removal clears the affiliation", func(t *testing.T) {
		require.NoError(t, service.RemovePlayerFromSchool(ctx, club, playerID))

		var profile models.PlayerProfile
		require.NoError(t, db.First(&profile, "id = ?", playerID).Error)
		assert.Nil(t, profile.SchoolID)
		assert.False(t, profile.SchoolVerified)
	})
}
