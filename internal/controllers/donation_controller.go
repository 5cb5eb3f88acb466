package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/metrics"
	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/models"
	"bloodlink-backend/internal/repository"
	"bloodlink-backend/internal/services"
	"bloodlink-backend/utils"
)

// PublicDonationRequests godoc
// @Summary List donation requests (public feed)
// @Tags donations
// @Produce json
// @Success 200 {array} models.DonationRequest
// @Router /all-donation-requests-public [get]
func PublicDonationRequests(store repository.DonationStore, cache *services.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if reqs, ok := cache.PublicFeed(ctx); ok {
			return c.JSON(reqs)
		}

		reqs, err := store.All(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		cache.SetPublicFeed(ctx, reqs)
		return c.JSON(reqs)
	}
}

// AllDonationRequests godoc
// @Summary List every donation request (admin)
// @Tags donations
// @Produce json
// @Success 200 {array} models.DonationRequest
// @Router /all-donation-requests [get]
func AllDonationRequests(store repository.DonationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		reqs, err := store.All(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(reqs)
	}
}

// MyDonationRequests lists the authenticated caller's own requests.
func MyDonationRequests(store repository.DonationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		reqs, err := store.ByRequester(ctx, email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(reqs)
	}
}

// CreateDonationRequest godoc
// @Summary Create a donation request
// @Description Creates a request in pending status. Blocked accounts are refused.
// @Tags donations
// @Accept json
// @Produce json
// @Param request body models.DonationRequest true "Donation Request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /create-donation-request [post]
func CreateDonationRequest(store repository.DonationStore, users repository.UserStore, cache *services.Cache, pub services.EventPublisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		var req models.DonationRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		// Requester identity comes from the session, not the payload.
		req.RequesterEmail = email
		if req.RequesterName == "" {
			req.RequesterName = middleware.NameFromLocals(c)
		}

		if req.RecipientName == "" || req.RecipientDistrict == "" || req.RecipientUpazila == "" ||
			req.HospitalName == "" || req.FullAddress == "" || req.DonationDate == "" ||
			req.DonationTime == "" || req.RequestMessage == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "all fields are required"})
		}
		if !models.IsBloodGroup(req.BloodGroup) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid blood group"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.ByEmail(ctx, email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load user"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unknown user"})
		}
		if user.Status == models.AccountBlocked {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account is blocked"})
		}

		// Every request starts its lifecycle in pending.
		req.DonationStatus = models.StatusPending

		id, err := store.Insert(ctx, req)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create donation request"})
		}

		cache.InvalidatePublicFeed(ctx)
		publishEvent(c, pub, services.LifecycleEvent{
			Type:           services.EventRequestCreated,
			DonationID:     id,
			RequesterEmail: email,
			BloodGroup:     req.BloodGroup,
			District:       req.RecipientDistrict,
			DonationStatus: models.StatusPending,
			OccurredAt:     time.Now(),
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
	}
}

// DonationRequestDetails serves both GET /details/{id} and
// GET /get-donation-request/{id}.
func DonationRequestDetails(store repository.DonationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := utils.Oid(id); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		req, err := store.ByID(ctx, id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if req == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		}
		return c.JSON(req)
	}
}

// UpdateDonationRequest godoc
// @Summary Update a donation request
// @Description Replaces the editable fields. Requester email and lifecycle status are preserved from the stored record.
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} map[string]interface{}
// @Router /update-donation-request/{id} [put]
func UpdateDonationRequest(store repository.DonationStore, users repository.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		id := c.Params("id")
		if _, err := utils.Oid(id); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
		}

		var req models.DonationRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := store.ByID(ctx, id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if existing == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		}
		if existing.RequesterEmail != email && !isAdmin(ctx, users, email) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}

		// Requester identity and current status are not editable.
		req.RequesterEmail = existing.RequesterEmail
		req.DonationStatus = existing.DonationStatus

		modified, err := store.Replace(ctx, id, req)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update request"})
		}
		return c.JSON(fiber.Map{"modifiedCount": modified})
	}
}

type statusPatch struct {
	ID             string `json:"id"`
	DonationStatus string `json:"donationStatus"`
}

// PatchDonationStatus godoc
// @Summary Move a donation request through its lifecycle
// @Description pending->inprogress, inprogress->done|canceled. An illegal transition matches nothing and reports modifiedCount 0.
// @Tags donations
// @Accept json
// @Produce json
// @Param patch body statusPatch true "Status Patch"
// @Success 200 {object} map[string]interface{}
// @Router /donation-status [patch]
func PatchDonationStatus(store repository.DonationStore, cache *services.Cache, pub services.EventPublisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body statusPatch
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if _, err := utils.Oid(body.ID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
		}

		from := models.TransitionFrom(body.DonationStatus)
		if from == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid target status"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		modified, err := store.UpdateStatus(ctx, body.ID, from, body.DonationStatus)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status"})
		}

		if modified > 0 {
			metrics.ObserveTransition(body.DonationStatus)
			cache.InvalidatePublicFeed(ctx)
			publishEvent(c, pub, services.LifecycleEvent{
				Type:           services.EventStatusChanged,
				DonationID:     body.ID,
				DonationStatus: body.DonationStatus,
				OccurredAt:     time.Now(),
			})
		}
		return c.JSON(fiber.Map{"modifiedCount": modified})
	}
}

// DeleteDonationRequest removes a request. Admins may delete any request,
// everyone else only their own.
func DeleteDonationRequest(store repository.DonationStore, users repository.UserStore, cache *services.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := middleware.EmailFromLocals(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		id := c.Params("id")
		if _, err := utils.Oid(id); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		owner := email
		if isAdmin(ctx, users, email) {
			owner = ""
		}

		deleted, err := store.Delete(ctx, id, owner)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete request"})
		}
		if deleted > 0 {
			cache.InvalidatePublicFeed(ctx)
		}
		return c.JSON(fiber.Map{"deletedCount": deleted})
	}
}

func isAdmin(ctx context.Context, users repository.UserStore, email string) bool {
	u, err := users.ByEmail(ctx, email)
	return err == nil && u != nil && u.Role == models.RoleAdmin
}

// publishEvent is best effort: a broker outage never fails the request.
func publishEvent(c *fiber.Ctx, pub services.EventPublisher, ev services.LifecycleEvent) {
	if pub == nil {
		return
	}
	if err := pub.Publish(c.Context(), ev); err != nil {
		log.Printf("publish %s failed (request_id=%v): %v", ev.Type, c.Locals("request_id"), err)
	}
}
