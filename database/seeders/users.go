package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/shinyflakes/app/models"
	"github.com/shashiranjanraj/shinyflakes/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers creates the development admin account if it does not exist.
func SeedUsers(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@shinyflakes.test").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := auth.HashPassword("heisenberg")
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		FullName: "Walter White",
		Email:    "admin@shinyflakes.test",
		Password: hashed,
		Role:     "admin",
	}).Error
}
