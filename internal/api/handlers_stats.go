package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	handler.ensureDependencies()

	overview, err := handler.statsService.BuildOverview(time.Now().In(handler.location), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(overview)
}
