//go:build integration
// +build integration

// Package testdb starts a throwaway PostgreSQL container for integration tests.
package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/reference"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated and seeded database. The container is terminated
// when the test finishes.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("top_talent_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := reference.NewReferenceRepository(db).Seed(ctx); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	return db
}

// CreateUser inserts a user with the given role.
func CreateUser(t *testing.T, db *gorm.DB, email, name string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: name, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

// PositionID returns the id of the seeded position called name.
func PositionID(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	var pos models.Position
	if err := db.Where("name = ?", name).First(&pos).Error; err != nil {
		t.Fatalf("Position %q not seeded: %v", name, err)
	}
	return pos.ID
}

// CategoryID returns the id of the seeded category called name.
func CategoryID(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	var cat models.Category
	if err := db.Where("name = ?", name).First(&cat).Error; err != nil {
		t.Fatalf("Category %q not seeded: %v", name, err)
	}
	return cat.ID
}
