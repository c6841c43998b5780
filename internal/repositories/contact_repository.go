package repositories

import "kontak/internal/models"

// ContactFilter holds the optional search filters. An empty field means no
// constraint on that field. Name matches as a substring of either first or
// last name; email and phone each match as a substring of their own field.
// Provided filters combine with AND.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

// ContactRepository defines the interface for contact data access.
// Every lookup is scoped to the owning user's ID.
type ContactRepository interface {
	Create(contact *models.Contact) error
	GetByID(ownerID, id string) (*models.Contact, error)
	Update(contact *models.Contact) error
	Delete(contact *models.Contact) error
	Search(ownerID string, filter ContactFilter, page, size int) ([]models.Contact, int64, error)
}
