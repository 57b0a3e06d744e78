package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vkotelnikov/sympta/internal/models"
	"github.com/vkotelnikov/sympta/internal/services"
)

const exportQueryDateLayout = "2006-01-02"

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	handler.ensureDependencies()

	records, status, message := handler.loadExportRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	return c.JSON(handler.exportService.BuildSummary(records))
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	handler.ensureDependencies()

	records, status, message := handler.loadExportRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range handler.exportService.BuildCSVRows(records) {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(time.Now().In(handler.location), "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	handler.ensureDependencies()

	records, status, message := handler.loadExportRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	payload := fiber.Map{
		"summary": handler.exportService.BuildSummary(records),
		"entries": handler.exportService.BuildJSONEntries(records),
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "application/json", buildExportFilename(time.Now().In(handler.location), "json"))
	return c.Send(encoded)
}

func (handler *Handler) loadExportRange(c *fiber.Ctx) (records []models.SymptomRecord, status int, message string) {
	from, to, err := parseExportRange(c, handler.location)
	if err != nil {
		return nil, fiber.StatusBadRequest, err.Error()
	}

	loaded, err := handler.exportService.LoadRange(from, to)
	if err != nil {
		return nil, fiber.StatusInternalServerError, "failed to fetch records"
	}
	return loaded, 0, ""
}

func parseExportRange(c *fiber.Ctx, location *time.Location) (*time.Time, *time.Time, error) {
	parse := func(name string) (*time.Time, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}
		parsed, err := time.ParseInLocation(exportQueryDateLayout, raw, location)
		if err != nil {
			return nil, fmt.Errorf("invalid %s date", name)
		}
		return &parsed, nil
	}

	from, err := parse("from")
	if err != nil {
		return nil, nil, err
	}
	to, err := parse("to")
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, fmt.Errorf("to date precedes from date")
	}
	if to != nil {
		// Include the whole last day of the range.
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}
	return from, to, nil
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("sympta-export-%s.%s", now.Format(exportQueryDateLayout), extension)
}
