package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSuggestions(c *fiber.Ctx) error {
	handler.ensureDependencies()

	suggestions, err := handler.analysisService.Suggestions(time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to analyze symptoms")
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

func (handler *Handler) GetPredictions(c *fiber.Ctx) error {
	handler.ensureDependencies()

	predictions, err := handler.analysisService.Predictions(time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to score patterns")
	}
	return c.JSON(fiber.Map{"predictions": predictions})
}
