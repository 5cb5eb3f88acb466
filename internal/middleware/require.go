package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/repository"
)

// RequireAuth checks if the request carries an authenticated identity.
// If not -> return 401 Unauthorized.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := EmailFromLocals(c); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}

// RequireRole loads the caller's account and admits only the given roles.
// The resolved role is stored in Locals as a read-only derived value; the
// user document itself is never mutated or shared downstream.
func RequireRole(users repository.UserStore, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := EmailFromLocals(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		u, err := users.ByEmail(ctx, email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load user"})
		}
		if u == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unknown user")
		}

		for _, r := range roles {
			if u.Role == r {
				c.Locals("role", u.Role)
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}
}
