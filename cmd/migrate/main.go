package main

import (
	"log"

	"github.com/officialsayandeeppaul/RecordHub/config"
	"github.com/officialsayandeeppaul/RecordHub/models"
)

func main() {
	config.LoadEnv()
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Record{},
		&models.PasswordResetToken{},
		&models.RefreshToken{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
