package db

import (
	"log"
	"os"

	"bookclub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=bookclub port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial club books
	seedBooks()
}

// Migrate creates/updates the schema for all models, including the foreign
// key constraints that back the cascade-delete rules.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
		&models.Book{},
		&models.Read{},
	)
}

func seedBooks() {
	var count int64
	DB.Model(&models.Book{}).Count(&count)
	if count > 0 {
		log.Println("Books already seeded, skipping")
		return
	}

	books := []models.Book{
		{Title: "Dune", Author: "Frank Herbert", CoverURL: models.DefaultCoverURL},
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", CoverURL: models.DefaultCoverURL},
		{Title: "Snow Crash", Author: "Neal Stephenson", CoverURL: models.DefaultCoverURL},
		{Title: "Kindred", Author: "Octavia E. Butler", CoverURL: models.DefaultCoverURL},
	}

	for _, book := range books {
		if err := DB.Create(&book).Error; err != nil {
			log.Printf("Failed to seed book %s: %v", book.Title, err)
		}
	}
	log.Println("Initial club books created successfully")
}
