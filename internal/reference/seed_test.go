package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPositions(t *testing.T) {
	positions := DefaultPositions()
	assert.Len(t, positions, 10)

	seen := map[string]bool{}
	for _, p := range positions {
		assert.False(t, seen[p.Name], "duplicate position %s", p.Name)
		seen[p.Name] = true
	}
	assert.True(t, seen["Portero"])
	assert.True(t, seen["Delantero Centro"])
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	assert.Len(t, categories, 6)

	byName := map[string]int{}
	for i, c := range categories {
		byName[c.Name] = i
		if c.MaxAge != nil {
			assert.LessOrEqual(t, c.MinAge, *c.MaxAge, c.Name)
		}
	}
	assert.Nil(t, categories[byName["Senior"]].MaxAge)
	assert.Nil(t, categories[byName["Veteranos"]].MaxAge)
	assert.Equal(t, 17, categories[byName["Sub-20"]].MinAge)
}
