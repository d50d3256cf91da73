// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/YairCer/iglesia-app/config"
	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/models"
)

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	username := env("ADMIN_USERNAME", "admin")
	email := env("ADMIN_EMAIL", "admin@iglesia.local")
	password := env("ADMIN_PASSWORD", "cambiame")

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("user already exists with username:", username)
		os.Exit(0)
	}

	u := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert user: %v", err)
	}

	fmt.Println("staff user created successfully")
	fmt.Println("   Username:", username)
	fmt.Println("   Email:   ", email)
	fmt.Println("   Password:", password, "(plain, remember to change later!)")
}
