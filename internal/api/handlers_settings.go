package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/startupcomply/comply/internal/models"
)

func (handler *Handler) GetNotificationSettings(c *fiber.Ctx) error {
	return c.JSON(handler.settings.NotificationSettings())
}

func (handler *Handler) UpdateNotificationSettings(c *fiber.Ctx) error {
	var settings models.NotificationSettings
	if err := c.BodyParser(&settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.settings.UpdateNotificationSettings(settings)
	return c.JSON(settings)
}

func (handler *Handler) GetSecuritySettings(c *fiber.Ctx) error {
	return c.JSON(handler.settings.SecuritySettings())
}

func (handler *Handler) UpdateSecuritySettings(c *fiber.Ctx) error {
	var settings models.SecuritySettings
	if err := c.BodyParser(&settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.settings.UpdateSecuritySettings(settings)
	return c.JSON(settings)
}
