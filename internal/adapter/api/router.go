package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const (
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "POST, GET, OPTIONS"
)

// Handlers groups the delivery handlers. Quota is nil when no counter backend
// is configured and its routes are then not mounted.
type Handlers struct {
	Search    *SearchHandler
	Catalog   *CatalogHandler
	Quota     *QuotaHandler
	Workspace *WorkspaceHandler

	Version string
	Env     string
}

// CORS lets the browser client call from any origin. Preflights are answered
// here with an empty 200 whatever the body.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}

func SetupRouter(app *fiber.App, h Handlers) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(CORS())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": h.Version,
			"env":     h.Env,
		})
	})

	// Path kept for clients still calling the hosted function
	app.Post("/functions/v1/legal-search", h.Search.HandleSearch)

	v1 := app.Group("/v1")
	v1.Post("/legal-search", h.Search.HandleSearch)

	v1.Get("/library", h.Catalog.SearchLibrary)
	v1.Get("/library/categories", h.Catalog.Categories)
	v1.Get("/library/:id", h.Catalog.GetArticle)
	v1.Get("/countries", h.Catalog.Countries)
	v1.Get("/plans/:tier", h.Catalog.Plan)

	v1.Get("/templates", h.Workspace.ListTemplates)
	v1.Post("/templates/:id/generate", h.Workspace.GenerateTemplate)
	v1.Post("/documents/analyze", h.Workspace.AnalyzeDocument)

	if h.Quota != nil {
		v1.Get("/quota/:userID", h.Quota.Status)
		v1.Post("/quota/:userID/consume", h.Quota.Consume)
	}
}
