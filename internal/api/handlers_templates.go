package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": handler.templates.List()})
}

func (handler *Handler) DownloadTemplate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid template id")
	}

	template, found := handler.templates.RecordDownload(id)
	if !found {
		return apiError(c, fiber.StatusNotFound, "template not found")
	}
	return c.JSON(fiber.Map{"template": template})
}
