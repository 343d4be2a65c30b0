package school

import (
	"testing"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/stretchr/testify/assert"
)

func schoolUser(id string, categories ...string) models.User {
	profile := &models.SchoolProfile{Base: models.Base{ID: "profile-" + id}, UserID: id}
	for _, name := range categories {
		profile.Categories = append(profile.Categories, models.Category{Name: name})
	}
	return models.User{Base: models.Base{ID: id}, Name: id, Role: models.RoleSchool, SchoolProfile: profile}
}

func TestFilterSchools(t *testing.T) {
	users := []models.User{
		schoolUser("norte", "Sub-15", "Sub-17"),
		schoolUser("sur", "Senior"),
		schoolUser("centro"),
		{Base: models.Base{ID: "ana"}, Role: models.RolePlayer, SchoolProfile: &models.SchoolProfile{}},
		{Base: models.Base{ID: "empty"}, Role: models.RoleSchool},
	}

	ids := func(us []models.User) []string {
		out := []string{}
		for _, u := range us {
			out = append(out, u.ID)
		}
		return out
	}

	assert.Equal(t, []string{"norte", "sur", "centro"}, ids(FilterSchools(users, SearchFilters{})))
	assert.Equal(t, []string{"norte"}, ids(FilterSchools(users, SearchFilters{Category: "Sub-17"})))
	assert.Empty(t, FilterSchools(users, SearchFilters{Category: "sub-17"}))
}

func TestNewSchoolView(t *testing.T) {
	u := schoolUser("norte")
	view := NewSchoolView(u, Counts{Players: 4, Posts: 2})

	assert.Equal(t, "norte", view.ID)
	assert.Equal(t, 4, view.Count.Players)
	assert.Equal(t, 2, view.Count.Posts)
	assert.Same(t, u.SchoolProfile, view.Profile)
}

func TestUpdateProfileInputFields(t *testing.T) {
	blank := ""
	name := "Escuela Norte"
	approx := 40

	fields := UpdateProfileInput{OfficialName: &name, Phone: &blank, ApproximatePlayers: &approx}.fields()

	assert.Len(t, fields, 3)
	assert.Equal(t, "Escuela Norte", *fields["official_name"].(*string))
	assert.Nil(t, fields["phone"].(*string))
	assert.Equal(t, 40, fields["approximate_players"])
	assert.NotContains(t, fields, "city")
}

func TestUpdatePlayerInputFields(t *testing.T) {
	blank := ""
	goals := 5

	fields := UpdatePlayerInput{PreferredFoot: &blank, Goals: &goals}.fields()

	assert.Len(t, fields, 2)
	assert.Nil(t, fields["preferred_foot"].(*models.Foot))
	assert.Equal(t, 5, fields["goals"])
	assert.NotContains(t, fields, "category_id")
	assert.NotContains(t, fields, "assists")
}
