package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/repository"
)

// Districts godoc
// @Summary List districts
// @Tags geography
// @Produce json
// @Success 200 {array} models.District
// @Router /districts [get]
func Districts(store repository.GeoStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		rows, err := store.Districts(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rows)
	}
}

// Upazilas godoc
// @Summary List upazilas
// @Tags geography
// @Produce json
// @Success 200 {array} models.Upazila
// @Router /upazilas [get]
func Upazilas(store repository.GeoStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		rows, err := store.Upazilas(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(rows)
	}
}
