package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListActivities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"activities": handler.repositories.Activities.GetAll()})
}
