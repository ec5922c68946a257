package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/startupcomply/comply/internal/models"
	"github.com/startupcomply/comply/internal/services"
)

func (handler *Handler) ListTeamMembers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"members": handler.team.List()})
}

func (handler *Handler) InviteTeamMember(c *fiber.Ctx) error {
	var input services.InviteTeamMemberInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Email == "" || input.FirstName == "" || input.LastName == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	member := handler.team.Invite(input)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"member": member})
}

func (handler *Handler) UpdateTeamMember(c *fiber.Ctx) error {
	var member models.TeamMember
	if err := c.BodyParser(&member); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	member.ID = c.Params("id")

	handler.team.Update(member)
	return sendOK(c)
}

func (handler *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	handler.team.Delete(c.Params("id"))
	return sendOK(c)
}
