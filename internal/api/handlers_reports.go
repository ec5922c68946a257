package api

import "github.com/gofiber/fiber/v2"

type generateReportRequest struct {
	Type    string         `json:"type"`
	Filters map[string]any `json:"filters"`
}

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"reports": handler.reports.List()})
}

func (handler *Handler) GenerateReport(c *fiber.Ctx) error {
	var request generateReportRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if request.Type == "" {
		return apiError(c, fiber.StatusBadRequest, "type is required")
	}

	report := handler.reports.Generate(request.Type, request.Filters)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"report": report})
}
