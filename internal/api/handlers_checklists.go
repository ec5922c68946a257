package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/startupcomply/comply/internal/models"
	"github.com/startupcomply/comply/internal/services"
)

type checklistResponse struct {
	models.Checklist
	Progress int `json:"progress"`
}

func buildChecklistResponse(checklist models.Checklist) checklistResponse {
	return checklistResponse{Checklist: checklist, Progress: services.Progress(checklist)}
}

func (handler *Handler) ListChecklists(c *fiber.Ctx) error {
	checklists := handler.checklists.List()
	responses := make([]checklistResponse, 0, len(checklists))
	for _, checklist := range checklists {
		responses = append(responses, buildChecklistResponse(checklist))
	}
	return c.JSON(fiber.Map{"checklists": responses})
}

func (handler *Handler) GetChecklist(c *fiber.Ctx) error {
	checklist, found := handler.checklists.Get(c.Params("id"))
	if !found {
		return apiError(c, fiber.StatusNotFound, "checklist not found")
	}
	return c.JSON(buildChecklistResponse(checklist))
}

func (handler *Handler) CreateChecklist(c *fiber.Ctx) error {
	var input services.CreateChecklistInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Title == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}

	checklist := handler.checklists.Create(input)
	return c.Status(fiber.StatusCreated).JSON(buildChecklistResponse(checklist))
}

func (handler *Handler) UpdateChecklist(c *fiber.Ctx) error {
	var checklist models.Checklist
	if err := c.BodyParser(&checklist); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	checklist.ID = c.Params("id")

	// Unknown ids fall through silently; the response echoes whatever is
	// stored afterwards.
	handler.checklists.Update(checklist)
	stored, found := handler.checklists.Get(checklist.ID)
	if !found {
		return apiError(c, fiber.StatusNotFound, "checklist not found")
	}
	return c.JSON(buildChecklistResponse(stored))
}

func (handler *Handler) DeleteChecklist(c *fiber.Ctx) error {
	handler.checklists.Delete(c.Params("id"))
	return sendOK(c)
}

func (handler *Handler) AddChecklistItem(c *fiber.Ctx) error {
	var input services.CreateChecklistItem
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Title == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}

	checklist, found := handler.checklists.AddItem(c.Params("id"), input)
	if !found {
		return apiError(c, fiber.StatusNotFound, "checklist not found")
	}
	return c.Status(fiber.StatusCreated).JSON(buildChecklistResponse(checklist))
}

func (handler *Handler) DeleteChecklistItem(c *fiber.Ctx) error {
	checklist, found := handler.checklists.DeleteItem(c.Params("id"), c.Params("itemID"))
	if !found {
		return apiError(c, fiber.StatusNotFound, "checklist not found")
	}
	return c.JSON(buildChecklistResponse(checklist))
}

func (handler *Handler) ToggleChecklistItem(c *fiber.Ctx) error {
	checklist, found := handler.checklists.ToggleItem(c.Params("id"), c.Params("itemID"))
	if !found {
		return apiError(c, fiber.StatusNotFound, "checklist item not found")
	}
	return c.JSON(buildChecklistResponse(checklist))
}
