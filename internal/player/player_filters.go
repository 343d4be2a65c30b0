package player

import (
	"time"

	"github.com/Valentina9990/top-talent/internal/models"
)

// Age range buckets offered by the directory. Bounds are inclusive and are
// matched against the player's category.
const (
	AgeRange15To16 = "15-16 años"
	AgeRange17To18 = "17-18 años"
	AgeRangeOver18 = "+18 años"
)

// SearchFilters are the optional directory criteria. Name and Zone run in
// SQL; Position and AgeRange run in memory over the loaded relations.
type SearchFilters struct {
	Name     string `form:"name"`
	Position string `form:"position"`
	AgeRange string `form:"age_range"`
	Zone     string `form:"zone"`
}

// PlayerView is one directory entry.
type PlayerView struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Image     *string               `json:"image"`
	Role      models.Role           `json:"role"`
	CreatedAt time.Time             `json:"created_at"`
	Profile   *models.PlayerProfile `json:"player_profile"`
}

func NewPlayerView(u models.User) PlayerView {
	return PlayerView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		Profile:   u.PlayerProfile,
	}
}

// MatchesAgeRange reports whether category c falls in the bucket. A known
// bucket never matches a nil category; an unknown bucket matches everything.
func MatchesAgeRange(c *models.Category, ageRange string) bool {
	switch ageRange {
	case AgeRange15To16:
		return c != nil && c.MinAge == 15 && c.MaxAge != nil && *c.MaxAge == 16
	case AgeRange17To18:
		return c != nil && c.MinAge == 17 && c.MaxAge != nil && *c.MaxAge == 18
	case AgeRangeOver18:
		return c != nil && c.MinAge >= 18
	default:
		return true
	}
}

// HasPosition reports whether the profile is linked to a position named name.
func HasPosition(p *models.PlayerProfile, name string) bool {
	for _, pos := range p.Positions {
		if pos.Name == name {
			return true
		}
	}
	return false
}

// FilterPlayers is the in-memory half of the search. It also drops anything
// that is not a PLAYER with a profile, whatever the SQL half returned.
func FilterPlayers(users []models.User, f SearchFilters) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role != models.RolePlayer || u.PlayerProfile == nil {
			continue
		}
		if f.Position != "" && !HasPosition(u.PlayerProfile, f.Position) {
			continue
		}
		if f.AgeRange != "" && !MatchesAgeRange(u.PlayerProfile.Category, f.AgeRange) {
			continue
		}
		out = append(out, u)
	}
	return out
}
