package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/Loanox/urunsatisportali-20241129067/models"
)

// SeedOwner creates the initial owner account when no owner exists yet.
// Credentials come from OWNER_USERNAME / OWNER_PASSWORD.
func SeedOwner() {
	var cnt int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleOwner).Count(&cnt)
	if cnt > 0 {
		return
	}

	username := getenv("OWNER_USERNAME", "owner")
	password := os.Getenv("OWNER_PASSWORD")
	if password == "" {
		password = "owner12345"
		log.Printf("OWNER_PASSWORD not set, seeding owner %q with the default password", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed owner: %v", err)
	}

	owner := models.User{
		Username:     username,
		FullName:     "Portal Owner",
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		IsActive:     true,
	}
	if err := DB.Create(&owner).Error; err != nil {
		log.Fatalf("seed owner: %v", err)
	}
	log.Printf("seeded owner account %q", username)
}
