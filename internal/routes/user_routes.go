package routes

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/controllers"
	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/models"
)

func UserRoutes(app *fiber.App, d Deps) {
	auth := middleware.RequireAuth()
	admin := middleware.RequireRole(d.Users, models.RoleAdmin)

	app.Get("/get-users", auth, admin, controllers.GetUsers(d.Users))
	app.Patch("/update-role", auth, admin, controllers.UpdateRole(d.Users))
	app.Patch("/update-status", auth, admin, controllers.UpdateStatus(d.Users, d.Cache))

	app.Get("/get-user", auth, controllers.GetUser(d.Users))
	app.Get("/get-user-role", auth, controllers.GetUserRole(d.Users))
	app.Get("/get-user-status", auth, controllers.GetUserStatus(d.Users, d.Cache))
}
