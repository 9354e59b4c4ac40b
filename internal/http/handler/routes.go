package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/auth"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/config"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/content"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/http/middleware"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/ratelimit"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/revalidate"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/service"
)

// Deps bundles everything the routes need. DB may be nil when the service
// runs without persistence.
type Deps struct {
	DB                 *sql.DB
	Submissions        service.Submissions
	Limiter            *ratelimit.Limiter
	RateLimit          config.RateLimitConfig
	Sessions           *auth.Sessions
	Content            *content.Store
	Invalidator        revalidate.Invalidator
	RevalidationSecret string
	Production         bool
}

// RegisterRoutes attaches all HTTP routes to app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Post("/lead", SubmitLead(d.Submissions, d.Limiter, d.RateLimit))

	careers := api.Group("/careers")
	careers.Post("/apply", SubmitApplication(d.Submissions))
	careers.Post("/refer", SubmitReferral(d.Submissions))
	careers.Post("/talent-pool", SubscribeTalentPool(d.Submissions))
	careers.Post("/status", CheckApplicationStatus(d.Submissions))

	api.Get("/content/:key", GetContent(d.Content))
	api.Post("/revalidate", Revalidate(d.Invalidator, d.RevalidationSecret))

	admin := api.Group("/admin")
	admin.Post("/login", AdminLogin(d.Sessions, d.Production))
	admin.Post("/logout", AdminLogout())
	admin.Get("/content", middleware.AdminAuth(d.Sessions), AdminGetContent(d.Content))
	admin.Put("/content", middleware.AdminAuth(d.Sessions), AdminPutContent(d.Content, d.Invalidator))

	// The editor UI itself is served elsewhere; this gate exists so an
	// unauthenticated hit on the dashboard path bounces to the login page.
	app.Get("/admin/dashboard", middleware.AdminPageGate(d.Sessions, "/admin"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}
