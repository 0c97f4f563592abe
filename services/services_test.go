package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Record{},
		&models.PasswordResetToken{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$12$irrelevantirrelevantirrelevantirrelevantirrele",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
