package main

import (
	"log"
	"os"
	"time"

	"notes-app-be/internal/model"
	"notes-app-be/internal/repository/scope"
	"notes-app-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
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

	log.Println("Seeding sample notes...")

	now := time.Now()
	notes := []model.Note{
		{Id: uuid.New(), Title: "Welcome", Content: "This is your first note. Edit or delete it any time.", CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour)},
		{Id: uuid.New(), Title: "Shopping", Content: "Milk, eggs, bread", CreatedAt: now.Add(-1 * time.Hour), UpdatedAt: now.Add(-1 * time.Hour)},
		{Id: uuid.New(), Title: "Ideas", Content: "Keep notes short. The search box filters by title and content.", CreatedAt: now, UpdatedAt: now},
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	for _, n := range notes {
		// Skip titles that already exist so reruns stay idempotent
		var existing model.Note
		if err := db.Where("title = ?", n.Title).First(&existing).Error; err == nil {
			yellow.Printf("Note '%s' already exists, skipping...\n", n.Title)
			continue
		}

		if err := db.Create(&n).Error; err != nil {
			log.Printf("Error: Failed to seed note '%s': %v", n.Title, err)
			continue
		}
		green.Printf("Seeded note '%s'\n", n.Title)
	}

	var all []model.Note
	if err := db.Scopes(scope.OrderByCreatedAsc).Find(&all).Error; err == nil {
		log.Printf("Seeding complete. Store now holds %d notes.", len(all))
	} else {
		log.Println("Seeding complete.")
	}
}
