package routes

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink-backend/internal/repository"
	"bloodlink-backend/internal/services"
)

type Deps struct {
	Users     repository.UserStore
	Donations repository.DonationStore
	Donors    repository.DonorStore
	Blogs     repository.BlogStore
	Geo       repository.GeoStore
	Cache     *services.Cache
	Events    services.EventPublisher
	JWTSecret string
}

// Register wires every resource route. JWTAuth must already be installed
// on the app; the per-resource files attach RequireAuth/RequireRole where
// a route is not public.
func Register(app *fiber.App, d Deps) {
	AuthRoutes(app, d)
	DonationRoutes(app, d)
	DonorRoutes(app, d)
	UserRoutes(app, d)
	BlogRoutes(app, d)
	GeoRoutes(app, d)
}
