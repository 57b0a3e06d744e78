package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vkotelnikov/sympta/internal/services"
)

type resolveSymptomsRequest struct {
	Text     string   `json:"text" form:"text"`
	Selected []string `json:"selected" form:"selected"`
}

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	if handler.base == nil {
		return c.JSON(fiber.Map{"symptoms": []interface{}{}})
	}
	return c.JSON(fiber.Map{"symptoms": handler.base.Symptoms})
}

func (handler *Handler) ResolveSymptoms(c *fiber.Ctx) error {
	var request resolveSymptomsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if handler.base == nil {
		return c.JSON(fiber.Map{"matches": []services.ResolvedSymptom{}, "selected": request.Selected})
	}

	matches, selected := services.ResolveFreeText(handler.base, request.Text, request.Selected, handler.matcherOptions)
	return c.JSON(fiber.Map{"matches": matches, "selected": selected})
}
