package routes

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/controllers"
)

func GeoRoutes(app *fiber.App, d Deps) {
	districts := controllers.Districts(d.Geo)
	upazilas := controllers.Upazilas(d.Geo)

	app.Get("/districts", districts)
	app.Get("/upazilas", upazilas)
	// The web client historically fetched these as static files.
	app.Get("/districts.json", districts)
	app.Get("/upazilas.json", upazilas)
}
