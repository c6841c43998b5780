package handlers

import (
	"log"

	"kontak/internal/models"
	"kontak/internal/repositories"
	"kontak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for contacts.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the contact routes. All of them require a token.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contacts")
	contactRoutes.Post("/", h.HandleCreate)
	contactRoutes.Get("/", h.HandleSearch)
	contactRoutes.Get("/:contactId", h.HandleGet)
	contactRoutes.Put("/:contactId", h.HandleUpdate)
	contactRoutes.Delete("/:contactId", h.HandleDelete)
}

// ContactRequest represents the request body for creating or replacing a
// contact. Updates are full-replace: every field is overwritten.
type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// HandleCreate creates a new contact owned by the authenticated user.
func (h *ContactHandler) HandleCreate(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("message", "invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationMessages(err)})
	}

	contact, err := h.service.Create(currentUser(c).ID, &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return RespondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dataResponse(newContactResource(contact)))
}

// HandleGet retrieves one of the authenticated user's contacts.
func (h *ContactHandler) HandleGet(c *fiber.Ctx) error {
	contact, err := h.service.Get(currentUser(c).ID, c.Params("contactId"))
	if err != nil {
		return RespondServiceError(c, err)
	}
	return c.JSON(dataResponse(newContactResource(contact)))
}

// HandleUpdate replaces all updatable fields of a contact.
func (h *ContactHandler) HandleUpdate(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("message", "invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationMessages(err)})
	}

	contact, err := h.service.Update(currentUser(c).ID, c.Params("contactId"), &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return RespondServiceError(c, err)
	}

	return c.JSON(dataResponse(newContactResource(contact)))
}

// HandleDelete removes a contact and its addresses.
func (h *ContactHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(currentUser(c).ID, c.Params("contactId")); err != nil {
		return RespondServiceError(c, err)
	}
	return c.JSON(dataResponse(true))
}

// HandleSearch returns a page of the user's contacts matching the optional
// name, email and phone filters.
func (h *ContactHandler) HandleSearch(c *fiber.Ctx) error {
	filter := repositories.ContactFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
	}
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 10)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	contacts, total, err := h.service.Search(currentUser(c).ID, filter, page, size)
	if err != nil {
		return RespondServiceError(c, err)
	}

	return c.JSON(pagedResponse(newContactCollection(contacts), newPageMeta(page, size, total)))
}
