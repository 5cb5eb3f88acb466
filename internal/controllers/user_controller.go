package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/models"
	"bloodlink-backend/internal/repository"
	"bloodlink-backend/internal/services"
)

// GetUsers godoc
// @Summary Get all users
// @Description Returns every account (admin only)
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]interface{}
// @Router /get-users [get]
func GetUsers(users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		all, err := users.All(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(all)
	}
}

// GetUser returns the authenticated caller's own account.
func GetUser(users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		u, err := users.ByEmail(ctx, email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if u == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		return c.JSON(u)
	}
}

// GetUserRole returns the caller's role as a derived, read-only value.
func GetUserRole(users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		u, err := users.ByEmail(ctx, email)
		if err != nil || u == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load user"})
		}
		return c.JSON(fiber.Map{"role": u.Role})
	}
}

// GetUserStatus returns the caller's account status. The create-request
// form checks this before submitting, so it is the one user lookup worth
// caching.
func GetUserStatus(users repository.UserStore, cache *services.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if status, ok := cache.UserStatus(ctx, email); ok {
			return c.JSON(fiber.Map{"status": status})
		}

		u, err := users.ByEmail(ctx, email)
		if err != nil || u == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load user"})
		}
		cache.SetUserStatus(ctx, email, u.Status)
		return c.JSON(fiber.Map{"status": u.Status})
	}
}

type rolePatch struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param patch body rolePatch true "Role Patch"
// @Success 200 {object} map[string]interface{}
// @Router /update-role [patch]
func UpdateRole(users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body rolePatch
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if body.Email == "" || !models.IsRole(body.Role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email or role"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		modified, err := users.UpdateRole(ctx, body.Email, body.Role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update role"})
		}
		return c.JSON(fiber.Map{"modifiedCount": modified})
	}
}

type statusChange struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// UpdateStatus godoc
// @Summary Activate or block a user
// @Tags users
// @Accept json
// @Produce json
// @Param patch body statusChange true "Status Patch"
// @Success 200 {object} map[string]interface{}
// @Router /update-status [patch]
func UpdateStatus(users repository.UserStore, cache *services.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body statusChange
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if body.Email == "" || !models.IsAccountStatus(body.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email or status"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		modified, err := users.UpdateStatus(ctx, body.Email, body.Status)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status"})
		}
		if modified > 0 {
			cache.InvalidateUserStatus(ctx, body.Email)
		}
		return c.JSON(fiber.Map{"modifiedCount": modified})
	}
}
