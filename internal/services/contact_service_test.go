package services_test

import (
	"testing"

	"kontak/internal/models"
	"kontak/internal/repositories"
	"kontak/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockContactRepository is a mock implementation of repositories.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(contact *models.Contact) error {
	args := m.Called(contact)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ownerID, id string) (*models.Contact, error) {
	args := m.Called(ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(contact *models.Contact) error {
	args := m.Called(contact)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(contact *models.Contact) error {
	args := m.Called(contact)
	return args.Error(0)
}

func (m *MockContactRepository) Search(ownerID string, filter repositories.ContactFilter, page, size int) ([]models.Contact, int64, error) {
	args := m.Called(ownerID, filter, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Contact), args.Get(1).(int64), args.Error(2)
}

func TestContactService_Create(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Contact")).Return(nil).Once()

	contact, err := service.Create("owner-1", &models.Contact{FirstName: "Jon", LastName: "Snow"})
	assert.NoError(t, err)
	assert.Equal(t, "owner-1", contact.UserID)
	assert.Equal(t, "Jon", contact.FirstName)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Get(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	expected := &models.Contact{ID: "contact-1", FirstName: "Jon", UserID: "owner-1"}
	mockRepo.On("GetByID", "owner-1", "contact-1").Return(expected, nil).Once()

	contact, err := service.Get("owner-1", "contact-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, contact)

	// Wrong owner is the same as absent.
	mockRepo.On("GetByID", "owner-2", "contact-1").Return(nil, repositories.ErrNotFound).Once()
	contact, err = service.Get("owner-2", "contact-1")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, contact)
	mockRepo.AssertExpectations(t)
}

func TestContactService_UpdateFullReplace(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	existing := &models.Contact{
		ID:        "contact-1",
		FirstName: "Jon",
		LastName:  "Snow",
		Email:     "jon@nightwatch.com",
		Phone:     "0987261721812",
		UserID:    "owner-1",
	}
	mockRepo.On("GetByID", "owner-1", "contact-1").Return(existing, nil).Once()
	mockRepo.On("Update", existing).Return(nil).Once()

	// Full-replace: fields left empty in the request are overwritten too.
	contact, err := service.Update("owner-1", "contact-1", &models.Contact{FirstName: "Aegon"})
	assert.NoError(t, err)
	assert.Equal(t, "Aegon", contact.FirstName)
	assert.Empty(t, contact.LastName)
	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
	assert.Equal(t, "owner-1", contact.UserID)
	mockRepo.AssertExpectations(t)
}

func TestContactService_UpdateNotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	mockRepo.On("GetByID", "owner-1", "missing").Return(nil, repositories.ErrNotFound).Once()

	contact, err := service.Update("owner-1", "missing", &models.Contact{FirstName: "Aegon"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, contact)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Delete(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	existing := &models.Contact{ID: "contact-1", UserID: "owner-1"}
	mockRepo.On("GetByID", "owner-1", "contact-1").Return(existing, nil).Once()
	mockRepo.On("Delete", existing).Return(nil).Once()

	assert.NoError(t, service.Delete("owner-1", "contact-1"))

	mockRepo.On("GetByID", "owner-1", "missing").Return(nil, repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.Delete("owner-1", "missing"), services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestContactService_SearchDefaults(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	filter := repositories.ContactFilter{Name: "jon"}
	mockRepo.On("Search", "owner-1", filter, 1, 10).Return([]models.Contact{}, int64(0), nil).Once()

	// Out-of-range paging falls back to page 1, size 10.
	contacts, total, err := service.Search("owner-1", filter, 0, -5)
	assert.NoError(t, err)
	assert.Empty(t, contacts)
	assert.Equal(t, int64(0), total)
	mockRepo.AssertExpectations(t)
}
