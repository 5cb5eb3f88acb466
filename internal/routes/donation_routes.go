package routes

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/controllers"
	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/models"
)

func DonationRoutes(app *fiber.App, d Deps) {
	// Public feed for the landing page and donor search.
	app.Get("/all-donation-requests-public", controllers.PublicDonationRequests(d.Donations, d.Cache))

	auth := middleware.RequireAuth()

	app.Get("/all-donation-requests", auth,
		middleware.RequireRole(d.Users, models.RoleAdmin),
		controllers.AllDonationRequests(d.Donations))

	app.Get("/my-donation-request", auth, controllers.MyDonationRequests(d.Donations))
	app.Post("/create-donation-request", auth, controllers.CreateDonationRequest(d.Donations, d.Users, d.Cache, d.Events))

	// Both detail paths are live; older clients still call /details.
	app.Get("/details/:id", auth, controllers.DonationRequestDetails(d.Donations))
	app.Get("/get-donation-request/:id", auth, controllers.DonationRequestDetails(d.Donations))

	app.Put("/update-donation-request/:id", auth, controllers.UpdateDonationRequest(d.Donations, d.Users))
	app.Patch("/donation-status", auth, controllers.PatchDonationStatus(d.Donations, d.Cache, d.Events))
	app.Delete("/delete-request/:id", auth, controllers.DeleteDonationRequest(d.Donations, d.Users, d.Cache))
}
