package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/startupcomply/comply/internal/services"
)

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	var patch services.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.auth.UpdateUser(patch)
	return c.JSON(fiber.Map{"user": handler.auth.Session().User})
}

func (handler *Handler) GetCompany(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"company": handler.repositories.Company.Get()})
}

func (handler *Handler) UpdateCompany(c *fiber.Ctx) error {
	var patch services.CompanyPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.auth.UpdateCompany(patch)
	return c.JSON(fiber.Map{"company": handler.auth.Session().Company})
}
