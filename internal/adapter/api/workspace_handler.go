package api

import (
	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type WorkspaceHandler struct {
	workspace *usecase.Workspace
}

func NewWorkspaceHandler(ws *usecase.Workspace) *WorkspaceHandler {
	return &WorkspaceHandler{workspace: ws}
}

func (h *WorkspaceHandler) ListTemplates(c *fiber.Ctx) error {
	templates := h.workspace.Templates(c.Query("category"))
	return c.JSON(fiber.Map{"templates": templates})
}

func (h *WorkspaceHandler) GenerateTemplate(c *fiber.Ctx) error {
	var req entity.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	doc, err := h.workspace.GenerateTemplate(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Status(fiber.StatusOK).Send(doc)
}

func (h *WorkspaceHandler) AnalyzeDocument(c *fiber.Ctx) error {
	var req entity.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	analysis, err := h.workspace.AnalyzeDocument(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(analysis)
}
