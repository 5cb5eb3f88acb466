package routes

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/controllers"
)

func DonorRoutes(app *fiber.App, d Deps) {
	app.Post("/add-donor", controllers.AddDonor(d.Donors))
	app.Get("/find-donor", controllers.FindDonor(d.Donors))
}
