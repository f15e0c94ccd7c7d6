package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecal/internal/cycle"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return cycle.DateOnly(parsed), nil
}

func parseMonthQuery(raw string, today time.Time, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return cycle.MonthStart(today), nil
	}
	parsed, err := time.ParseInLocation("2006-01", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return cycle.MonthStart(parsed), nil
}

// resolveToday prefers an explicit ?today= so callers can render any
// reference date; otherwise it reads the handler clock in the configured zone.
func (handler *Handler) resolveToday(c *fiber.Ctx) (time.Time, error) {
	if raw := strings.TrimSpace(c.Query("today")); raw != "" {
		return parseDayParam(raw, handler.location)
	}
	return cycle.DateOnly(handler.now().In(handler.location)), nil
}
