package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrpavithran/WorkShop/internal/api/http/handlers"
	"github.com/mrpavithran/WorkShop/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Workshops      *handlers.WorkshopsHandler
	Creator        *handlers.CreatorHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	workshops := app.Group("/workshops")
	workshops.Get("", cfg.Workshops.List)
	workshops.Get("/:id", cfg.Workshops.Get)
	workshops.Get("/:id/qr", cfg.Workshops.QR)
	// Registration is public: anonymous callers register as guests, logged-in
	// participants get the registration linked to their account.
	workshops.Post("/:id/register", cfg.AuthMiddleware.Optional, cfg.Workshops.Register)

	creator := app.Group("/creator", cfg.AuthMiddleware.Handle, auth.RequireCreator())
	creator.Post("/workshops", cfg.Creator.CreateWorkshop)
	creator.Get("/dashboard", cfg.Creator.Dashboard)
	creator.Get("/workshops/:id", cfg.Creator.ManageWorkshop)
	creator.Put("/registrations/:id/attendance", cfg.Creator.SetAttendance)

	profile := app.Group("/profile", cfg.AuthMiddleware.Handle, auth.RequireParticipant())
	profile.Get("", cfg.Profile.Profile)
	profile.Post("/registrations/:id/feedback", cfg.Profile.SubmitFeedback)

	registrations := app.Group("/registrations", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	registrations.Get("/:id/certificate", cfg.Profile.Certificate)
}
