package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	records, err := handler.records.ListRecords(owner)
	if err != nil {
		return recordServiceAPIError(c, err)
	}

	response := make([]recordResponse, 0, len(records))
	for _, record := range records {
		response = append(response, recordResponseFromModel(record))
	}
	return c.JSON(response)
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	payload, err := parseRecordPayload(c)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	input, err := recordInputFromPayload(payload, handler.location)
	if err != nil {
		return recordServiceAPIError(c, err)
	}

	record, err := handler.records.CreateRecord(owner, input)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recordResponseFromModel(record))
}

func (handler *Handler) UpdateRecord(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	payload, err := parseRecordPayload(c)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	input, err := recordInputFromPayload(payload, handler.location)
	if err != nil {
		return recordServiceAPIError(c, err)
	}

	record, err := handler.records.UpdateRecord(owner, c.Params("id"), input)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.JSON(recordResponseFromModel(record))
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	if err := handler.records.DeleteRecord(owner, c.Params("id")); err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ClearRecords(c *fiber.Ctx) error {
	owner, ok := currentOwner(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	}

	removed, err := handler.records.ClearRecords(owner)
	if err != nil {
		return recordServiceAPIError(c, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}
