package player

import (
	"testing"
	"time"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func category(min int, max *int) *models.Category {
	return &models.Category{Name: "c", MinAge: min, MaxAge: max}
}

func playerUser(id string, profile *models.PlayerProfile) models.User {
	return models.User{
		Base:          models.Base{ID: id, CreatedAt: time.Now()},
		Name:          id,
		Role:          models.RolePlayer,
		PlayerProfile: profile,
	}
}

func TestMatchesAgeRange(t *testing.T) {
	tests := []struct {
		name     string
		category *models.Category
		ageRange string
		want     bool
	}{
		{name: "exact 15-16", category: category(15, intPtr(16)), ageRange: AgeRange15To16, want: true},
		{name: "15-17 is not 15-16", category: category(15, intPtr(17)), ageRange: AgeRange15To16, want: false},
		{name: "exact 17-18", category: category(17, intPtr(18)), ageRange: AgeRange17To18, want: true},
		{name: "open ended 17 is not 17-18", category: category(17, nil), ageRange: AgeRange17To18, want: false},
		{name: "over 18 at the bound", category: category(18, nil), ageRange: AgeRangeOver18, want: true},
		{name: "over 18 veterans", category: category(35, nil), ageRange: AgeRangeOver18, want: true},
		{name: "17 is not over 18", category: category(17, intPtr(20)), ageRange: AgeRangeOver18, want: false},
		{name: "nil category never matches a bucket", category: nil, ageRange: AgeRangeOver18, want: false},
		{name: "unknown bucket matches anything", category: nil, ageRange: "sub-99", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesAgeRange(tt.category, tt.ageRange))
		})
	}
}

func TestFilterPlayers(t *testing.T) {
	forward := models.Position{Base: models.Base{ID: "pos-forward"}, Name: "Delantero Centro"}
	keeper := models.Position{Base: models.Base{ID: "pos-keeper"}, Name: "Portero"}

	ana := playerUser("ana", &models.PlayerProfile{
		Positions: []models.Position{forward},
		Category:  category(18, nil),
	})
	luis := playerUser("luis", &models.PlayerProfile{
		Positions: []models.Position{keeper},
		Category:  category(15, intPtr(16)),
	})
	noCategory := playerUser("sofia", &models.PlayerProfile{Positions: []models.Position{forward}})
	noProfile := playerUser("pedro", nil)
	school := models.User{Base: models.Base{ID: "club"}, Role: models.RoleSchool, PlayerProfile: &models.PlayerProfile{}}

	users := []models.User{ana, luis, noCategory, noProfile, school}

	ids := func(us []models.User) []string {
		out := []string{}
		for _, u := range us {
			out = append(out, u.ID)
		}
		return out
	}

	t.Run("no filters keeps players with a profile in order", func(t *testing.T) {
		assert.Equal(t, []string{"ana", "luis", "sofia"}, ids(FilterPlayers(users, SearchFilters{})))
	})

	t.Run("position is an exact name", func(t *testing.T) {
		assert.Equal(t, []string{"ana", "sofia"}, ids(FilterPlayers(users, SearchFilters{Position: "Delantero Centro"})))
		assert.Empty(t, FilterPlayers(users, SearchFilters{Position: "delantero"}))
	})

	t.Run("age bucket excludes players without category", func(t *testing.T) {
		assert.Equal(t, []string{"ana"}, ids(FilterPlayers(users, SearchFilters{AgeRange: AgeRangeOver18})))
		assert.Equal(t, []string{"luis"}, ids(FilterPlayers(users, SearchFilters{AgeRange: AgeRange15To16})))
	})

	t.Run("filters combine", func(t *testing.T) {
		got := FilterPlayers(users, SearchFilters{Position: "Delantero Centro", AgeRange: AgeRangeOver18})
		assert.Equal(t, []string{"ana"}, ids(got))
	})

	t.Run("unknown bucket does not filter", func(t *testing.T) {
		assert.Len(t, FilterPlayers(users, SearchFilters{AgeRange: "cualquiera"}), 3)
	})
}

func TestNewPlayerView(t *testing.T) {
	img := "https://cdn.example.com/ana.png"
	u := playerUser("ana", &models.PlayerProfile{UserID: "ana"})
	u.Email = "ana@example.com"
	u.Image = &img

	view := NewPlayerView(u)
	assert.Equal(t, "ana", view.ID)
	assert.Equal(t, "ana@example.com", view.Email)
	assert.Equal(t, &img, view.Image)
	assert.Same(t, u.PlayerProfile, view.Profile)
}
