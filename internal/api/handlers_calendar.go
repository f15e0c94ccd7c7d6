package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	today, err := handler.resolveToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid today date")
	}

	overview, err := handler.calendar.Overview(owner, today)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.JSON(overviewView(overview))
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	today, err := handler.resolveToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid today date")
	}
	month, err := parseMonthQuery(c.Query("month"), today, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	view, err := handler.calendar.Month(owner, month, today)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.JSON(calendarView(view))
}

func (handler *Handler) GetDayStatus(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	view, err := handler.calendar.Day(owner, day)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.JSON(fiber.Map{"date": view.Date, "status": string(view.Status)})
}

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	view, err := handler.stats.Build(owner)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.JSON(statsView(view))
}
