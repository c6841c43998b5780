package database

import (
	"errors"
	"fmt"

	"kontak/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates the database with the development fixtures: two users whose
// password and token both equal their username, and one contact for the
// first user. Seeding is idempotent; existing users are left alone.
func Seed(db *gorm.DB) error {
	for _, username := range []string{"test", "test2"} {
		if err := seedUser(db, username); err != nil {
			return err
		}
	}

	var user models.User
	if err := db.First(&user, "username = ?", "test").Error; err != nil {
		return fmt.Errorf("failed to load seeded user: %w", err)
	}

	var count int64
	if err := db.Model(&models.Contact{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count seeded contacts: %w", err)
	}
	if count > 0 {
		return nil
	}

	contact := models.Contact{
		ID:        uuid.New().String(),
		FirstName: "test",
		LastName:  "test",
		Email:     "test@local.com",
		Phone:     "12345",
		UserID:    user.ID,
	}
	if err := db.Create(&contact).Error; err != nil {
		return fmt.Errorf("failed to seed contact: %w", err)
	}
	return nil
}

func seedUser(db *gorm.DB, username string) error {
	var existing models.User
	err := db.First(&existing, "username = ?", username).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check seeded user %s: %w", username, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(username), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: string(hashedPassword),
		Name:     username,
		Token:    username,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed user %s: %w", username, err)
	}
	return nil
}
