package repositories

import "kontak/internal/models"

// AddressRepository defines the interface for address data access.
// Every lookup is scoped to the owning contact's ID; the contact itself must
// already have been resolved through the owner's scope.
type AddressRepository interface {
	Create(address *models.Address) error
	GetByID(contactID, id string) (*models.Address, error)
	Update(address *models.Address) error
	Delete(address *models.Address) error
	ListByContact(contactID string) ([]models.Address, error)
}
