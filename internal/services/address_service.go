package services

import (
	"kontak/internal/models"
	"kontak/internal/repositories"
)

// AddressService handles business logic for a contact's addresses. Every
// operation walks the two-level ownership chain: the contact is resolved
// within the owner's scope first, then the address within that contact's
// scope. A failure at either level is the same ErrNotFound.
type AddressService struct {
	contactRepo repositories.ContactRepository
	addressRepo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(contactRepo repositories.ContactRepository, addressRepo repositories.AddressRepository) *AddressService {
	return &AddressService{
		contactRepo: contactRepo,
		addressRepo: addressRepo,
	}
}

// Create inserts a new address under the owner's contact.
func (s *AddressService) Create(ownerID, contactID string, address *models.Address) (*models.Address, error) {
	contact, err := s.contactRepo.GetByID(ownerID, contactID)
	if err != nil {
		return nil, err
	}

	address.ContactID = contact.ID
	if err := s.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Get retrieves one address through the ownership chain.
func (s *AddressService) Get(ownerID, contactID, addressID string) (*models.Address, error) {
	contact, err := s.contactRepo.GetByID(ownerID, contactID)
	if err != nil {
		return nil, err
	}
	return s.addressRepo.GetByID(contact.ID, addressID)
}

// Update applies full-replace semantics to an address, same as contacts.
func (s *AddressService) Update(ownerID, contactID, addressID string, fields *models.Address) (*models.Address, error) {
	contact, err := s.contactRepo.GetByID(ownerID, contactID)
	if err != nil {
		return nil, err
	}
	address, err := s.addressRepo.GetByID(contact.ID, addressID)
	if err != nil {
		return nil, err
	}

	address.Street = fields.Street
	address.City = fields.City
	address.Province = fields.Province
	address.Country = fields.Country
	address.PostalCode = fields.PostalCode

	if err := s.addressRepo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete removes one address through the ownership chain.
func (s *AddressService) Delete(ownerID, contactID, addressID string) error {
	contact, err := s.contactRepo.GetByID(ownerID, contactID)
	if err != nil {
		return err
	}
	address, err := s.addressRepo.GetByID(contact.ID, addressID)
	if err != nil {
		return err
	}
	return s.addressRepo.Delete(address)
}

// List returns all addresses of the owner's contact, unpaginated.
func (s *AddressService) List(ownerID, contactID string) ([]models.Address, error) {
	contact, err := s.contactRepo.GetByID(ownerID, contactID)
	if err != nil {
		return nil, err
	}
	return s.addressRepo.ListByContact(contact.ID)
}
