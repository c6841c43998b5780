package services_test

import (
	"testing"

	"kontak/internal/models"
	"kontak/internal/repositories"
	"kontak/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of repositories.AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockAddressRepository) GetByID(contactID, id string) (*models.Address, error) {
	args := m.Called(contactID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockAddressRepository) Update(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockAddressRepository) ListByContact(contactID string) ([]models.Address, error) {
	args := m.Called(contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Address), args.Error(1)
}

func TestAddressService_Create(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockAddresses := new(MockAddressRepository)
	service := services.NewAddressService(mockContacts, mockAddresses)

	contact := &models.Contact{ID: "contact-1", UserID: "owner-1"}
	mockContacts.On("GetByID", "owner-1", "contact-1").Return(contact, nil).Once()
	mockAddresses.On("Create", mock.AnythingOfType("*models.Address")).Return(nil).Once()

	address, err := service.Create("owner-1", "contact-1", &models.Address{Country: "Indonesia"})
	assert.NoError(t, err)
	assert.Equal(t, "contact-1", address.ContactID)
	mockContacts.AssertExpectations(t)
	mockAddresses.AssertExpectations(t)
}

func TestAddressService_CreateContactNotFound(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockAddresses := new(MockAddressRepository)
	service := services.NewAddressService(mockContacts, mockAddresses)

	// First stage of the ownership chain fails: the contact either does not
	// exist or belongs to another user. The address layer is never reached.
	mockContacts.On("GetByID", "owner-1", "missing").Return(nil, repositories.ErrNotFound).Once()

	address, err := service.Create("owner-1", "missing", &models.Address{Country: "Indonesia"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, address)
	mockAddresses.AssertNotCalled(t, "Create", mock.Anything)
	mockContacts.AssertExpectations(t)
}

func TestAddressService_GetAddressNotFound(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockAddresses := new(MockAddressRepository)
	service := services.NewAddressService(mockContacts, mockAddresses)

	// Second stage fails: the address is absent or under a different contact.
	// The caller sees the same not-found as a first-stage failure.
	contact := &models.Contact{ID: "contact-1", UserID: "owner-1"}
	mockContacts.On("GetByID", "owner-1", "contact-1").Return(contact, nil).Once()
	mockAddresses.On("GetByID", "contact-1", "missing").Return(nil, repositories.ErrNotFound).Once()

	address, err := service.Get("owner-1", "contact-1", "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, address)
	mockContacts.AssertExpectations(t)
	mockAddresses.AssertExpectations(t)
}

func TestAddressService_UpdateFullReplace(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockAddresses := new(MockAddressRepository)
	service := services.NewAddressService(mockContacts, mockAddresses)

	contact := &models.Contact{ID: "contact-1", UserID: "owner-1"}
	existing := &models.Address{
		ID:         "address-1",
		Street:     "Jalan Lama",
		City:       "Jakarta",
		Province:   "DKI Jakarta",
		Country:    "Indonesia",
		PostalCode: "12345",
		ContactID:  "contact-1",
	}
	mockContacts.On("GetByID", "owner-1", "contact-1").Return(contact, nil).Once()
	mockAddresses.On("GetByID", "contact-1", "address-1").Return(existing, nil).Once()
	mockAddresses.On("Update", existing).Return(nil).Once()

	address, err := service.Update("owner-1", "contact-1", "address-1", &models.Address{Country: "Malaysia"})
	assert.NoError(t, err)
	assert.Equal(t, "Malaysia", address.Country)
	assert.Empty(t, address.Street)
	assert.Empty(t, address.City)
	assert.Empty(t, address.Province)
	assert.Empty(t, address.PostalCode)
	assert.Equal(t, "contact-1", address.ContactID)
	mockContacts.AssertExpectations(t)
	mockAddresses.AssertExpectations(t)
}

func TestAddressService_Delete(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockAddresses := new(MockAddressRepository)
	service := services.NewAddressService(mockContacts, mockAddresses)

	contact := &models.Contact{ID: "contact-1", UserID: "owner-1"}
	existing := &models.Address{ID: "address-1", ContactID: "contact-1"}
	mockContacts.On("GetByID", "owner-1", "contact-1").Return(contact, nil).Once()
	mockAddresses.On("GetByID", "contact-1", "address-1").Return(existing, nil).Once()
	mockAddresses.On("Delete", existing).Return(nil).Once()

	assert.NoError(t, service.Delete("owner-1", "contact-1", "address-1"))
	mockContacts.AssertExpectations(t)
	mockAddresses.AssertExpectations(t)
}

func TestAddressService_List(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockAddresses := new(MockAddressRepository)
	service := services.NewAddressService(mockContacts, mockAddresses)

	contact := &models.Contact{ID: "contact-1", UserID: "owner-1"}
	expected := []models.Address{
		{ID: "address-1", ContactID: "contact-1"},
		{ID: "address-2", ContactID: "contact-1"},
	}
	mockContacts.On("GetByID", "owner-1", "contact-1").Return(contact, nil).Once()
	mockAddresses.On("ListByContact", "contact-1").Return(expected, nil).Once()

	addresses, err := service.List("owner-1", "contact-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, addresses)

	mockContacts.On("GetByID", "owner-1", "missing").Return(nil, repositories.ErrNotFound).Once()
	addresses, err = service.List("owner-1", "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, addresses)
	mockContacts.AssertExpectations(t)
	mockAddresses.AssertExpectations(t)
}
