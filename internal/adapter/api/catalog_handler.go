package api

import (
	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read-only reference data: library, countries
// and plan capabilities.
type CatalogHandler struct {
	library *usecase.Library
}

func NewCatalogHandler(library *usecase.Library) *CatalogHandler {
	return &CatalogHandler{library: library}
}

func (h *CatalogHandler) SearchLibrary(c *fiber.Ctx) error {
	plan, err := planParam(c)
	if err != nil {
		return writeError(c, err)
	}
	articles := h.library.Search(c.Query("q"), c.Query("category"), plan)
	return c.JSON(fiber.Map{"articles": articles, "count": len(articles)})
}

func (h *CatalogHandler) GetArticle(c *fiber.Ctx) error {
	plan, err := planParam(c)
	if err != nil {
		return writeError(c, err)
	}
	article, err := h.library.Get(c.Params("id"), plan)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(article)
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.library.Categories()})
}

func (h *CatalogHandler) Countries(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"countries": h.library.Countries()})
}

func (h *CatalogHandler) Plan(c *fiber.Ctx) error {
	plan, err := entity.ParsePlanTier(c.Params("tier"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entity.CapabilitiesOf(plan))
}
