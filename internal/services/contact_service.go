package services

import (
	"log"

	"kontak/internal/models"
	"kontak/internal/repositories"
	"kontak/pkg/events"
)

// ContactService handles business logic for a user's contacts. When an event
// client is configured, contact lifecycle changes are published to the broker
// for downstream consumers (audit log, sync jobs).
type ContactService struct {
	contactRepo repositories.ContactRepository
	eventClient *events.Client
}

// NewContactService creates a new ContactService. The event client may be nil
// when no broker is configured; publishing is then skipped.
func NewContactService(contactRepo repositories.ContactRepository, eventClient *events.Client) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		eventClient: eventClient,
	}
}

// Create inserts a new contact owned by the given user.
func (s *ContactService) Create(ownerID string, contact *models.Contact) (*models.Contact, error) {
	contact.UserID = ownerID
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	s.publish("contact.created", contact)
	return contact, nil
}

// Get retrieves one contact within the owner's scope.
func (s *ContactService) Get(ownerID, id string) (*models.Contact, error) {
	return s.contactRepo.GetByID(ownerID, id)
}

// Update applies full-replace semantics: every updatable field is overwritten
// with the provided value. The fetch doubles as the ownership check.
func (s *ContactService) Update(ownerID, id string, fields *models.Contact) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	contact.FirstName = fields.FirstName
	contact.LastName = fields.LastName
	contact.Email = fields.Email
	contact.Phone = fields.Phone

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	s.publish("contact.updated", contact)
	return contact, nil
}

// Delete removes a contact and, through the repository, its addresses.
func (s *ContactService) Delete(ownerID, id string) error {
	contact, err := s.contactRepo.GetByID(ownerID, id)
	if err != nil {
		return err
	}
	if err := s.contactRepo.Delete(contact); err != nil {
		return err
	}
	s.publish("contact.deleted", contact)
	return nil
}

// Search returns one page of the owner's contacts matching the filter and the
// total match count. Page and size fall back to 1 and 10 when out of range.
func (s *ContactService) Search(ownerID string, filter repositories.ContactFilter, page, size int) ([]models.Contact, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return s.contactRepo.Search(ownerID, filter, page, size)
}

// publish sends a contact lifecycle event. Publishing is best effort: a
// broker failure is logged and never fails the request.
func (s *ContactService) publish(event string, contact *models.Contact) {
	if s.eventClient == nil {
		return
	}
	payload := map[string]interface{}{
		"contactID": contact.ID,
		"ownerID":   contact.UserID,
	}
	if err := s.eventClient.PublishContactEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for contact %s: %v", event, contact.ID, err)
	}
}
