package middleware

import (
	"kontak/internal/handlers"
	"kontak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that resolves the opaque bearer token to
// a user. The Authorization header carries the raw token value with no scheme
// prefix. The resolved user is stored in the request locals under "user".
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")

		user, err := authService.ResolveToken(token)
		if err != nil {
			return handlers.RespondServiceError(c, err)
		}

		c.Locals("user", user)
		return c.Next()
	}
}
