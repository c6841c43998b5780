package handlers

import (
	"errors"
	"log"

	"kontak/internal/models"
	"kontak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserResource is the wire representation of a user. The password hash is
// never exposed; the raw token only appears in the login response.
type UserResource struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ContactResource is the wire representation of a contact.
type ContactResource struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressResource is the wire representation of an address.
type AddressResource struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// PageMeta describes one page of a paginated collection.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"total_pages"`
}

func newUserResource(user *models.User, withToken bool) UserResource {
	resource := UserResource{
		Username: user.Username,
		Name:     user.Name,
	}
	if withToken {
		resource.Token = user.Token
	}
	return resource
}

func newContactResource(contact *models.Contact) ContactResource {
	return ContactResource{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func newContactCollection(contacts []models.Contact) []ContactResource {
	collection := make([]ContactResource, 0, len(contacts))
	for i := range contacts {
		collection = append(collection, newContactResource(&contacts[i]))
	}
	return collection
}

func newAddressResource(address *models.Address) AddressResource {
	return AddressResource{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

func newAddressCollection(addresses []models.Address) []AddressResource {
	collection := make([]AddressResource, 0, len(addresses))
	for i := range addresses {
		collection = append(collection, newAddressResource(&addresses[i]))
	}
	return collection
}

func newPageMeta(page, size int, total int64) PageMeta {
	return PageMeta{
		CurrentPage: page,
		Size:        size,
		Total:       total,
		TotalPages:  (total + int64(size) - 1) / int64(size),
	}
}

// dataResponse wraps a single entity or boolean in the success body shape.
func dataResponse(v interface{}) fiber.Map {
	return fiber.Map{"data": v}
}

// pagedResponse wraps a collection page and its metadata.
func pagedResponse(data interface{}, meta PageMeta) fiber.Map {
	return fiber.Map{"data": data, "meta": meta}
}

// errorResponse builds the error body shape: a list of messages keyed by
// field name, or by "message" for non-field errors.
func errorResponse(key string, messages ...string) fiber.Map {
	return fiber.Map{"errors": map[string][]string{key: messages}}
}

// RespondServiceError maps a service error to its HTTP response. It is the
// single owner of the error body shape, shared with the auth middleware.
func RespondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse("message", "not found"))
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse("message", "unauthorized"))
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse("message", "Username or password wrong"))
	case errors.Is(err, services.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("username", "Username already registered"))
	default:
		log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("message", "internal server error"))
	}
}

// currentUser returns the authenticated user stored by the auth middleware.
func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
