package routes

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/controllers"
)

func AuthRoutes(app *fiber.App, d Deps) {
	app.Post("/add-user", controllers.Register(d.Users))
	app.Post("/login", controllers.Login(d.Users, d.JWTSecret))
}
