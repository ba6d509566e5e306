package api

import (
	"yujuris-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type QuotaHandler struct {
	ledger *usecase.QuotaLedger
}

func NewQuotaHandler(ledger *usecase.QuotaLedger) *QuotaHandler {
	return &QuotaHandler{ledger: ledger}
}

func (h *QuotaHandler) Status(c *fiber.Ctx) error {
	plan, err := planParam(c)
	if err != nil {
		return writeError(c, err)
	}
	status, err := h.ledger.Status(c.UserContext(), c.Params("userID"), plan)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(status)
}

// Consume is called by the client application after it rendered an answer.
func (h *QuotaHandler) Consume(c *fiber.Ctx) error {
	plan, err := planParam(c)
	if err != nil {
		return writeError(c, err)
	}
	status, err := h.ledger.Consume(c.UserContext(), c.Params("userID"), plan)
	if err != nil {
		code := statusFor(err)
		if code == fiber.StatusTooManyRequests {
			return c.Status(code).JSON(fiber.Map{"error": err.Error(), "quota": status})
		}
		return writeError(c, err)
	}
	return c.JSON(status)
}
