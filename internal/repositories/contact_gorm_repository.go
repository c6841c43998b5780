package repositories

import (
	"errors"
	"fmt"
	"strings"

	"kontak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

// Create inserts a new contact. The owner must already be set on the model.
func (r *GORMContactRepository) Create(contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if err := r.db.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// GetByID retrieves a single contact by ID, scoped to its owner. A contact
// that exists under a different owner yields ErrNotFound.
func (r *GORMContactRepository) GetByID(ownerID, id string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact by ID %s: %w", id, err)
	}
	return &contact, nil
}

// Update persists all fields of an existing contact.
func (r *GORMContactRepository) Update(contact *models.Contact) error {
	res := r.db.Save(contact)
	if res.Error != nil {
		return fmt.Errorf("failed to update contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a contact and all of its addresses in one transaction.
// SQLite does not enforce the foreign key cascade by default, so the
// addresses are deleted explicitly.
func (r *GORMContactRepository) Delete(contact *models.Contact) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Address{}, "contact_id = ?", contact.ID).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Contact{}, "id = ?", contact.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete contact %s: %w", contact.ID, err)
	}
	return nil
}

// Search returns one page of the owner's contacts matching the filter, plus
// the total match count across all pages. The name filter is an OR over
// first and last name; every provided filter must hold (AND across fields).
// Matching is a case-insensitive substring test. Pages are 1-indexed and
// ordered by creation time, then ID, for a stable traversal.
func (r *GORMContactRepository) Search(ownerID string, filter ContactFilter, page, size int) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{}).Where("user_id = ?", ownerID)

	if filter.Name != "" {
		pattern := "%" + strings.ToLower(filter.Name) + "%"
		query = query.Where(
			r.db.Where("LOWER(first_name) LIKE ?", pattern).Or("LOWER(last_name) LIKE ?", pattern),
		)
	}
	if filter.Email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	var contacts []models.Contact
	err := query.
		Order("created_at, id").
		Offset((page - 1) * size).
		Limit(size).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search contacts: %w", err)
	}

	return contacts, total, nil
}
