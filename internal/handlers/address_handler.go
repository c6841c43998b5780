package handlers

import (
	"log"

	"kontak/internal/models"
	"kontak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler handles HTTP requests for a contact's addresses.
type AddressHandler struct {
	service  *services.AddressService
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(service *services.AddressService) *AddressHandler {
	return &AddressHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the address routes. All of them require a token.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/contacts/:contactId/addresses")
	addressRoutes.Post("/", h.HandleCreate)
	addressRoutes.Get("/", h.HandleList)
	addressRoutes.Get("/:addressId", h.HandleGet)
	addressRoutes.Put("/:addressId", h.HandleUpdate)
	addressRoutes.Delete("/:addressId", h.HandleDelete)
}

// AddressRequest represents the request body for creating or replacing an
// address. Updates are full-replace, same as contacts.
type AddressRequest struct {
	Street     string `json:"street" validate:"omitempty,max=200"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=10"`
}

// HandleCreate creates a new address under one of the user's contacts.
func (h *AddressHandler) HandleCreate(c *fiber.Ctx) error {
	var req AddressRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing address create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("message", "invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationMessages(err)})
	}

	address, err := h.service.Create(currentUser(c).ID, c.Params("contactId"), &models.Address{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return RespondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dataResponse(newAddressResource(address)))
}

// HandleGet retrieves one address through the ownership chain.
func (h *AddressHandler) HandleGet(c *fiber.Ctx) error {
	address, err := h.service.Get(currentUser(c).ID, c.Params("contactId"), c.Params("addressId"))
	if err != nil {
		return RespondServiceError(c, err)
	}
	return c.JSON(dataResponse(newAddressResource(address)))
}

// HandleUpdate replaces all updatable fields of an address.
func (h *AddressHandler) HandleUpdate(c *fiber.Ctx) error {
	var req AddressRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing address update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("message", "invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationMessages(err)})
	}

	address, err := h.service.Update(currentUser(c).ID, c.Params("contactId"), c.Params("addressId"), &models.Address{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return RespondServiceError(c, err)
	}

	return c.JSON(dataResponse(newAddressResource(address)))
}

// HandleDelete removes one address.
func (h *AddressHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(currentUser(c).ID, c.Params("contactId"), c.Params("addressId")); err != nil {
		return RespondServiceError(c, err)
	}
	return c.JSON(dataResponse(true))
}

// HandleList returns all addresses of a contact, unpaginated.
func (h *AddressHandler) HandleList(c *fiber.Ctx) error {
	addresses, err := h.service.List(currentUser(c).ID, c.Params("contactId"))
	if err != nil {
		return RespondServiceError(c, err)
	}
	return c.JSON(dataResponse(newAddressCollection(addresses)))
}
