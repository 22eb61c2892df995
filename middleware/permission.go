package middleware

import (
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that lets through only users with the given role.
// It must run after JWTMiddleware and performs no I/O.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return utils.NewAppError(utils.KindAuth, "Access denied", nil)
		}

		if user.Role != role {
			return utils.NewAppError(utils.KindForbidden, "Access forbidden", nil)
		}

		return c.Next()
	}
}
