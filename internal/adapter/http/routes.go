package http

import (
	"resume-builder/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type AppConfig struct {
	AllowedOrigins string
	BodyLimit      int
	JWTSecret      string
}

// NewApp builds the fiber app with every route registered. m may be nil.
func NewApp(cfg AppConfig, h *Handler, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		BodyLimit:    cfg.BodyLimit,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigins}))
	if m != nil {
		app.Use(m.Middleware())
		app.Get("/metrics", m.Handler())
	}
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1", Auth(cfg.JWTSecret))
	api.Get("/templates", h.ListTemplates)

	api.Get("/resumes", h.ListResumes)
	api.Post("/resumes", h.CreateResume)
	api.Get("/resumes/:id", h.GetResume)
	api.Put("/resumes/:id", h.UpdateResume)
	api.Delete("/resumes/:id", h.DeleteResume)
	api.Put("/resumes/:id/template", h.SwitchTemplate)
	api.Patch("/resumes/:id/customization", h.Customize)
	api.Delete("/resumes/:id/customization", h.ResetCustomization)
	api.Post("/resumes/:id/preview", h.Preview)
	api.Post("/resumes/:id/jobs", h.StartJob)

	api.Get("/jobs/:id", h.GetJob)

	api.Get("/credits", h.Credits)
	api.Post("/credits/redeem", h.Redeem)
	api.Get("/credits/logs", h.CreditLogs)

	api.Post("/ai/generate", h.Generate)
	return app
}
