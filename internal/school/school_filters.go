package school

import (
	"time"

	"github.com/Valentina9990/top-talent/internal/models"
)

// SearchFilters are the optional school directory criteria. Category is
// matched in memory against the loaded category set; the rest run in SQL.
type SearchFilters struct {
	Name       string `form:"name"`
	Department string `form:"department"`
	City       string `form:"city"`
	Category   string `form:"category"`
}

// Counts are the per-school aggregates shown on directory cards.
type Counts struct {
	Players int `json:"players"`
	Posts   int `json:"posts"`
}

// SchoolView is one school directory entry.
type SchoolView struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Image     *string               `json:"image"`
	Role      models.Role           `json:"role"`
	CreatedAt time.Time             `json:"created_at"`
	Profile   *models.SchoolProfile `json:"school_profile"`
	Count     Counts                `json:"count"`
}

func NewSchoolView(u models.User, counts Counts) SchoolView {
	return SchoolView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		Profile:   u.SchoolProfile,
		Count:     counts,
	}
}

// HasCategory reports whether the school offers a category named name.
func HasCategory(p *models.SchoolProfile, name string) bool {
	for _, c := range p.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// FilterSchools is the in-memory half of the search. Anything that is not a
// SCHOOL with a profile is dropped.
func FilterSchools(users []models.User, f SearchFilters) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleSchool || u.SchoolProfile == nil {
			continue
		}
		if f.Category != "" && !HasCategory(u.SchoolProfile, f.Category) {
			continue
		}
		out = append(out, u)
	}
	return out
}
