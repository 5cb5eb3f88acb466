// @title BloodLink API
// @version 1.0
// @description REST backend for the BloodLink blood-donation coordination platform.
// @host localhost:5001
// @BasePath /

package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "bloodlink-backend/docs"

	"bloodlink-backend/bootstrap"
	"bloodlink-backend/config"
	"bloodlink-backend/database"
	"bloodlink-backend/internal/metrics"
	"bloodlink-backend/internal/middleware"
	"bloodlink-backend/internal/repository"
	"bloodlink-backend/internal/routes"
	"bloodlink-backend/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	// --- MongoDB ---
	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}
	if err := bootstrap.SeedGeography(db, cfg.GeoDataDir); err != nil {
		log.Fatalf("seed geography failed: %v", err)
	}

	// --- Optional collaborators ---
	cache := services.NewCache(cfg.RedisAddr, cfg.RedisPass)
	if err := cache.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
		cache = nil
	}

	var events services.EventPublisher = services.NoopPublisher{}
	if cfg.AMQPURL != "" {
		pub, err := services.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Printf("rabbitmq unavailable, lifecycle events disabled: %v", err)
		} else {
			events = pub
			defer pub.Close()
		}
	}

	// --- Fiber app ---
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestID())
	app.Use(metrics.HTTP())

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Users:     repository.NewUserStore(db),
		Donations: repository.NewDonationStore(db),
		Donors:    repository.NewDonorStore(db),
		Blogs:     repository.NewBlogStore(db),
		Geo:       repository.NewGeoStore(db),
		Cache:     cache,
		Events:    events,
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
