package configs

import (
	"log"

	"nunis-api/entity"

	"golang.org/x/crypto/bcrypt"
)

// first-run admin account
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Nama:     "Admin Nunis",
		Role:     "admin",
		Status:   1,
	}
	return db.Create(&admin).Error
}

// default catalog categories
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Makanan"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Minuman"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Koffie"})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Cemilan"})

	return nil
}
