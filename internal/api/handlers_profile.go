package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vkotelnikov/sympta/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	handler.ensureDependencies()

	profile, err := handler.settingsService.Profile()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	handler.ensureDependencies()

	var input services.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.settingsService.UpdateProfile(input, time.Now().In(handler.location))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNameTooLong),
			errors.Is(err, services.ErrInvalidWhatsAppNumber):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
		}
	}
	return c.JSON(fiber.Map{"profile": profile})
}
