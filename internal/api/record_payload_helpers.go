package api

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/models"
	"github.com/terraincognita07/cyclecal/internal/services"
)

var (
	errInvalidPayload   = errors.New("invalid payload")
	errInvalidStartDate = errors.New("invalid start date")
	errInvalidEndDate   = errors.New("invalid end date")
)

var payloadValidator = validator.New()

func parseRecordPayload(c *fiber.Ctx) (recordPayload, error) {
	payload := recordPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return recordPayload{}, errInvalidPayload
	}
	if err := validateRecordPayload(payload); err != nil {
		return recordPayload{}, err
	}
	return payload, nil
}

// validateRecordPayload checks the wire shape only. Domain rules such as
// start/end ordering and vocabulary membership stay in the record service.
func validateRecordPayload(payload recordPayload) error {
	err := payloadValidator.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errInvalidPayload
	}
	field, _, _ := strings.Cut(fieldErrors[0].StructField(), "[")
	switch field {
	case "StartDate":
		return errInvalidStartDate
	case "EndDate":
		return errInvalidEndDate
	case "Duration":
		return services.ErrRecordDurationOutOfRange
	case "Symptoms":
		return services.ErrRecordInvalidSymptom
	default:
		return errInvalidPayload
	}
}

func recordInputFromPayload(payload recordPayload, location *time.Location) (services.RecordInput, error) {
	input := services.RecordInput{
		Duration: payload.Duration,
		Flow:     payload.Flow,
		Color:    payload.Color,
		Symptoms: payload.Symptoms,
		Note:     payload.Note,
	}

	if strings.TrimSpace(payload.StartDate) != "" {
		start, err := parseDayParam(payload.StartDate, location)
		if err != nil {
			return services.RecordInput{}, errInvalidStartDate
		}
		input.StartDate = start
	}

	if strings.TrimSpace(payload.EndDate) != "" {
		end, err := parseDayParam(payload.EndDate, location)
		if err != nil {
			return services.RecordInput{}, errInvalidEndDate
		}
		input.EndDate = &end
	}

	return input, nil
}

func recordResponseFromModel(record models.CycleRecord) recordResponse {
	response := recordResponse{
		ID:        record.ID,
		StartDate: cycle.FormatDate(record.StartDate),
		Duration:  record.Duration,
		Flow:      record.Flow,
		Color:     record.Color,
		Symptoms:  record.Symptoms,
		Note:      record.Note,
	}
	if record.EndDate != nil {
		response.EndDate = cycle.FormatDate(*record.EndDate)
	}
	if response.Symptoms == nil {
		response.Symptoms = []string{}
	}
	return response
}

func recordServiceAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInvalidPayload):
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	case errors.Is(err, errInvalidStartDate):
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	case errors.Is(err, errInvalidEndDate):
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	case errors.Is(err, services.ErrOwnerInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid owner")
	case errors.Is(err, services.ErrRecordStartRequired):
		return apiError(c, fiber.StatusBadRequest, "start date is required")
	case errors.Is(err, services.ErrRecordEndBeforeStart):
		return apiError(c, fiber.StatusBadRequest, "end date is before start date")
	case errors.Is(err, services.ErrRecordSpanTooLong):
		return apiError(c, fiber.StatusBadRequest, "record span is too long")
	case errors.Is(err, services.ErrRecordDurationOutOfRange):
		return apiError(c, fiber.StatusBadRequest, "invalid duration")
	case errors.Is(err, services.ErrRecordInvalidFlow):
		return apiError(c, fiber.StatusBadRequest, "invalid flow value")
	case errors.Is(err, services.ErrRecordInvalidColor):
		return apiError(c, fiber.StatusBadRequest, "invalid color value")
	case errors.Is(err, services.ErrRecordInvalidSymptom):
		return apiError(c, fiber.StatusBadRequest, "invalid symptom")
	case errors.Is(err, services.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrRecordCreateFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to create record")
	case errors.Is(err, services.ErrRecordUpdateFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to update record")
	case errors.Is(err, services.ErrRecordDeleteFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}
}
