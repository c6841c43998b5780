package handlers

import (
	"log"

	"kontak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for registration, login and the current
// user's profile.
type UserHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the public user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/users", h.HandleRegister)
	router.Post("/users/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the user routes that require a token.
func (h *UserHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/users/current", h.HandleGetCurrent)
	router.Patch("/users/current", h.HandleUpdateCurrent)
	router.Delete("/users/logout", h.HandleLogout)
}

// RegisterUserRequest represents the request body for registration.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// HandleRegister handles new user registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("message", "invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationMessages(err)})
	}

	user, err := h.authService.Register(req.Username, req.Password, req.Name)
	if err != nil {
		return RespondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dataResponse(newUserResource(user, false)))
}

// LoginUserRequest represents the request body for login.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and returns the fresh opaque token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("message", "invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationMessages(err)})
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return RespondServiceError(c, err)
	}

	// Login is the only response carrying the raw token.
	return c.JSON(dataResponse(newUserResource(user, true)))
}

// HandleGetCurrent returns the authenticated user's profile.
func (h *UserHandler) HandleGetCurrent(c *fiber.Ctx) error {
	return c.JSON(dataResponse(newUserResource(currentUser(c), false)))
}

// UpdateUserRequest represents the partial profile update body. Absent
// fields keep their current value.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,max=100"`
}

// HandleUpdateCurrent applies a partial update to the authenticated user.
func (h *UserHandler) HandleUpdateCurrent(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("message", "invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationMessages(err)})
	}

	user, err := h.authService.UpdateProfile(currentUser(c), req.Name, req.Password)
	if err != nil {
		return RespondServiceError(c, err)
	}

	return c.JSON(dataResponse(newUserResource(user, false)))
}

// HandleLogout clears the authenticated user's token.
func (h *UserHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.authService.Logout(currentUser(c)); err != nil {
		return RespondServiceError(c, err)
	}
	return c.JSON(dataResponse(true))
}
