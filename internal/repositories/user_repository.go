package repositories

import "kontak/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByToken(token string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
