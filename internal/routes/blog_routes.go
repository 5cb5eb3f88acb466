package routes

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/controllers"
	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/models"
)

func BlogRoutes(app *fiber.App, d Deps) {
	app.Get("/get-blogs-public", controllers.GetBlogsPublic(d.Blogs))

	auth := middleware.RequireAuth()
	staff := middleware.RequireRole(d.Users, models.RoleAdmin, models.RoleVolunteer)
	admin := middleware.RequireRole(d.Users, models.RoleAdmin)

	// Volunteers may write and list; only admins publish or delete.
	app.Post("/add-blog", auth, staff, controllers.AddBlog(d.Blogs))
	app.Get("/get-blogs", auth, staff, controllers.GetBlogs(d.Blogs))
	app.Patch("/update-blog-status", auth, admin, controllers.UpdateBlogStatus(d.Blogs))
	app.Delete("/delete-blog/:id", auth, admin, controllers.DeleteBlog(d.Blogs))
}
