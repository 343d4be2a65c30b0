package reference

import (
	"context"

	"github.com/Valentina9990/top-talent/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReferenceRepository interface {
	ListPositions(ctx context.Context) ([]models.Position, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	Seed(ctx context.Context) error
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListPositions(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	if err := r.db.WithContext(ctx).Order("name asc").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *referenceRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Seed inserts the lookup rows. Rows whose name already exists are left alone.
func (r *referenceRepository) Seed(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		positions := DefaultPositions()
		if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&positions).Error; err != nil {
			return err
		}
		categories := DefaultCategories()
		return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&categories).Error
	})
}
