package reference

import "github.com/Valentina9990/top-talent/internal/models"

var positionNames = []string{
	"Portero",
	"Defensa Central",
	"Lateral Derecho",
	"Lateral Izquierdo",
	"Mediocampista Defensivo",
	"Mediocampista Central",
	"Mediocampista Ofensivo",
	"Extremo Derecho",
	"Extremo Izquierdo",
	"Delantero Centro",
}

func intPtr(v int) *int { return &v }

// DefaultPositions returns the football positions every install starts with.
func DefaultPositions() []models.Position {
	out := make([]models.Position, 0, len(positionNames))
	for _, name := range positionNames {
		out = append(out, models.Position{Name: name})
	}
	return out
}

// DefaultCategories returns the age categories. Senior and Veteranos have no upper bound.
func DefaultCategories() []models.Category {
	return []models.Category{
		{Name: "Sub-13", MinAge: 11, MaxAge: intPtr(13)},
		{Name: "Sub-15", MinAge: 13, MaxAge: intPtr(15)},
		{Name: "Sub-17", MinAge: 15, MaxAge: intPtr(17)},
		{Name: "Sub-20", MinAge: 17, MaxAge: intPtr(20)},
		{Name: "Senior", MinAge: 20},
		{Name: "Veteranos", MinAge: 35},
	}
}
