package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vkotelnikov/sympta/internal/services"
)

type createRecordsRequest struct {
	Symptoms []services.RecordInput `json:"symptoms" form:"symptoms"`
}

func (handler *Handler) CreateRecords(c *fiber.Ctx) error {
	handler.ensureDependencies()

	var request createRecordsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	records, err := handler.recordService.LogSymptoms(request.Symptoms, time.Now().In(handler.location))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNothingToLog),
			errors.Is(err, services.ErrEmptySymptomName),
			errors.Is(err, services.ErrInvalidSeverity),
			errors.Is(err, services.ErrInvalidDuration):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save symptoms")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"records": records})
}

func (handler *Handler) GetRecords(c *fiber.Ctx) error {
	handler.ensureDependencies()

	days := c.QueryInt("days", 0)
	if days > 0 {
		records, err := handler.recordService.RecentHistory(time.Now().In(handler.location), days)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
		}
		return c.JSON(fiber.Map{"records": records})
	}

	records, err := handler.recordService.History()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}
	return c.JSON(fiber.Map{"records": records})
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	handler.ensureDependencies()

	recordID := c.Params("id")
	if err := handler.recordService.DeleteRecord(recordID); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ResetRecords(c *fiber.Ctx) error {
	handler.ensureDependencies()

	if err := handler.recordService.Reset(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear history")
	}
	return c.JSON(fiber.Map{"ok": true})
}
