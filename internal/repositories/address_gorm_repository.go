package repositories

import (
	"errors"
	"fmt"

	"kontak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// Create inserts a new address. The owning contact must already be set.
func (r *GORMAddressRepository) Create(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// GetByID retrieves a single address by ID, scoped to its contact. An address
// under a different contact yields ErrNotFound.
func (r *GORMAddressRepository) GetByID(contactID, id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ? AND contact_id = ?", id, contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get address by ID %s: %w", id, err)
	}
	return &address, nil
}

// Update persists all fields of an existing address.
func (r *GORMAddressRepository) Update(address *models.Address) error {
	res := r.db.Save(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an address by its ID.
func (r *GORMAddressRepository) Delete(address *models.Address) error {
	res := r.db.Delete(&models.Address{}, "id = ?", address.ID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address %s: %w", address.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByContact returns all addresses of a contact in creation order.
func (r *GORMAddressRepository) ListByContact(contactID string) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.
		Where("contact_id = ?", contactID).
		Order("created_at, id").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses for contact %s: %w", contactID, err)
	}
	return addresses, nil
}
