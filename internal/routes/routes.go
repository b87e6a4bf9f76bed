package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/shulchan-app/shulchan-backend/internal/config"
	"github.com/shulchan-app/shulchan-backend/internal/handlers"
	"github.com/shulchan-app/shulchan-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	hostHandler *handlers.HostHandler,
	guestHandler *handlers.GuestHandler,
	directoryHandler *handlers.DirectoryHandler,
	adminHandler *handlers.AdminHandler,
	geoHandler *handlers.GeoHandler,
	healthHandler *handlers.HealthHandler,
	legalHandler *handlers.LegalHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Public host listing: stripped fields, no identity required.
	api.Get("/public/hosts", directoryHandler.ListPublicHosts)

	// Geocoding for the map and address autocomplete for profile forms.
	api.Post("/geo/geocode", geoHandler.Geocode)
	api.Get("/geo/autocomplete", geoHandler.Autocomplete)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) — applied per route so the public
	// listings above stay reachable without a token.
	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Delete("/auth/account", jwt, authHandler.DeleteAccount)

	api.Get("/users/me", jwt, userHandler.Me)
	api.Get("/users/me/profile", jwt, userHandler.FullProfile)
	api.Get("/users/me/dashboard", jwt, userHandler.Dashboard)
	api.Delete("/users/me", jwt, userHandler.DeleteMe)

	api.Post("/hosts", jwt, hostHandler.Create)
	api.Put("/hosts", jwt, hostHandler.Upsert)
	api.Delete("/hosts", jwt, hostHandler.Delete)
	api.Get("/hosts/me", jwt, hostHandler.Mine)
	api.Get("/hosts", jwt, directoryHandler.ListHosts)

	api.Post("/guests", jwt, guestHandler.Create)
	api.Put("/guests", jwt, guestHandler.Upsert)
	api.Delete("/guests", jwt, guestHandler.Delete)
	api.Get("/guests/me", jwt, guestHandler.Mine)
	api.Get("/guests", jwt, directoryHandler.ListGuests)

	api.Get("/people", jwt, directoryHandler.People)

	// Admin panel (JWT + admin role required)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.AssignRole)
	admin.Put("/users/:id/verify", adminHandler.SetVerified)
}
