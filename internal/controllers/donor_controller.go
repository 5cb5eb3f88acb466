package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/models"
	"bloodlink-backend/internal/repository"
	"bloodlink-backend/utils"
)

// AddDonor godoc
// @Summary Record a donor commitment
// @Description Links a donor to an in-progress request. A second commitment for the same request is reported with a null insertedId, not an error.
// @Tags donors
// @Accept json
// @Produce json
// @Param donor body models.Donor true "Donor"
// @Success 201 {object} map[string]interface{}
// @Router /add-donor [post]
func AddDonor(store repository.DonorStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d models.Donor
		if err := c.BodyParser(&d); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if d.DonorName == "" || d.DonorEmail == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "donorName and donorEmail are required"})
		}
		if _, err := utils.Oid(d.DonationID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid donation ID"})
		}
		if d.CreatedAt.IsZero() {
			d.CreatedAt = time.Now()
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		id, err := store.Insert(ctx, d)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				// The caller checks insertedId truthiness; a duplicate is a
				// no-op outcome, not a failure.
				return c.JSON(fiber.Map{"insertedId": nil})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save donor"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
	}
}

// FindDonor godoc
// @Summary Find the donor committed to a request
// @Description Returns an array of zero or one donors.
// @Tags donors
// @Produce json
// @Param donationId query string true "Donation Request ID"
// @Success 200 {array} models.Donor
// @Router /find-donor [get]
func FindDonor(store repository.DonorStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		donationID := c.Query("donationId")
		if donationID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing donationId"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		d, err := store.ByDonationID(ctx, donationID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if d == nil {
			return c.JSON([]models.Donor{})
		}
		return c.JSON([]models.Donor{*d})
	}
}
