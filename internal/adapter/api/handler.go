package api

import (
	"errors"
	"log"
	"strconv"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	search *usecase.LegalSearch
}

func NewSearchHandler(search *usecase.LegalSearch) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	// Body is JSON whatever the Content-Type says
	var req entity.SearchRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	answer, err := h.search.Handle(c.UserContext(), entity.NewQuery(req))
	if err != nil {
		if errors.Is(err, entity.ErrEmptyQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query is required"})
		}
		log.Printf("[YUJURIS-SEARCH] request %v failed: %v", c.Locals("requestid"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}

	c.Set("X-Yujuris-Fallback", strconv.FormatBool(answer.Fallback))
	return c.Status(fiber.StatusOK).JSON(answer.Response())
}

// statusFor maps domain errors shared by the catalog endpoints.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrResourceNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entity.ErrUnknownPlan), errors.Is(err, entity.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, entity.ErrPlanNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, entity.ErrMissingFields):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrQuotaExhausted):
		return fiber.StatusTooManyRequests
	case errors.Is(err, entity.ErrNotAvailable):
		return fiber.StatusNotImplemented
	}
	return fiber.StatusInternalServerError
}

func writeError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code == fiber.StatusInternalServerError {
		log.Printf("[YUJURIS-API] %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).JSON(fiber.Map{"error": "Internal server error", "details": err.Error()})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func planParam(c *fiber.Ctx) (entity.PlanTier, error) {
	return entity.ParsePlanTier(c.Query("plan"))
}
