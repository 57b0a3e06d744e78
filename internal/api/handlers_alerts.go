package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vkotelnikov/sympta/internal/services"
)

func (handler *Handler) CreateWhatsAppAlert(c *fiber.Ctx) error {
	handler.ensureDependencies()
	now := time.Now().In(handler.location)

	profile, err := handler.settingsService.Profile()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	records, err := handler.recordService.RecentHistory(now, services.AnalysisWindowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}

	link, err := services.BuildWhatsAppAlert(handler.base, profile, records, now)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingWhatsAppNumber):
			return apiError(c, fiber.StatusBadRequest, "add an emergency contact number in settings first")
		case errors.Is(err, services.ErrNoAlertableSymptoms):
			return apiError(c, fiber.StatusConflict, "no recent symptoms qualify for an emergency alert")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to build alert")
		}
	}
	return c.JSON(fiber.Map{"alert": link})
}
