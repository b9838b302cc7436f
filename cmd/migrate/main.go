package main

import (
	"log"
	"os"

	"github.com/Vaujx/BAAC/internal/model"
	"github.com/Vaujx/BAAC/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	log.Println("Step 1: Setting up extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Fatalf("Error: Setup statement failed: %v", err)
		}
	}

	log.Println("Step 2: Migrating tables...")
	err = db.AutoMigrate(
		&model.User{},
		&model.EmailVerificationToken{},
		&model.PasswordResetToken{},
		&model.UserProvider{},
		&model.Chat{},
		&model.ChatMessage{},
		&model.DocumentSubmission{},
		&model.ConversationLog{},
		&model.WebsiteVisit{},
		&model.DocumentRequestStat{},
		&model.AdminSetting{},
	)
	if err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration complete.")
}
