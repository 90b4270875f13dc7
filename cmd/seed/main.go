package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/ingest"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the store locations and an admin account
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SANPEGGIO'S PFG ANALYTICS - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	seedStores()
	seedAdmin()

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with the admin email and password")
	fmt.Println("3. Upload invoice CSVs at POST /api/v1/uploads")
	fmt.Println()
}

// seedStores upserts the six store locations with their address patterns.
func seedStores() {
	stores := ingest.DefaultStores()

	for _, store := range stores {
		store := store
		err := config.Gorm.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "location", "address_patterns"}),
		}).Create(&store).Error
		if err != nil {
			log.Fatalf("Failed to seed store %s: %v", store.ID, err)
		}
	}

	fmt.Printf("✅ Seeded %d store locations\n", len(stores))
}

// seedAdmin creates a local-login admin account from environment variables.
func seedAdmin() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := os.Getenv("SEED_ADMIN_NAME")
	if email == "" || password == "" {
		fmt.Println("⚠️  SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}
	if len(password) < 8 {
		log.Fatal("❌ SEED_ADMIN_PASSWORD must be at least 8 characters")
	}
	if name == "" {
		name = "Administrator"
	}

	var existing models.User
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	admin := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		Provider:     "local",
		PasswordHash: string(hash),
		Role:         "admin",
	}

	if err := config.Gorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
	fmt.Printf("Role:  %s\n", admin.Role)
}
