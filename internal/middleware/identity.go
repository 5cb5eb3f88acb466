package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// EmailFromLocals returns the authenticated caller's email as set by JWTAuth.
func EmailFromLocals(c *fiber.Ctx) (string, error) {
	email, _ := c.Locals("email").(string)
	if email == "" {
		return "", fiber.ErrUnauthorized
	}
	return email, nil
}

func NameFromLocals(c *fiber.Ctx) string {
	name, _ := c.Locals("name").(string)
	return name
}

func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}
