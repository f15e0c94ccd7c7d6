package api

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecal/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	exportRange, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return exportRangeAPIError(c, err)
	}

	rows, err := handler.exports.BuildCSVRows(owner, exportRange)
	if err != nil {
		return recordServiceAPIError(c, err)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	if err := writer.WriteAll(rows); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := handler.now().In(handler.location)
	filename := fmt.Sprintf("cyclecal-%s-%s.csv", owner, now.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(output.Bytes())
}

func exportRangeAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrExportFromDateInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	case errors.Is(err, services.ErrExportToDateInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid export range")
	}
}
