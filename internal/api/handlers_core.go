package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecal/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return c.Status(fiber.StatusNotFound).SendString("not found")
}

func (handler *Handler) GetCatalog(c *fiber.Ctx) error {
	symptoms := make([]fiber.Map, 0, len(models.SymptomVocabulary()))
	for _, symptom := range models.SymptomVocabulary() {
		symptoms = append(symptoms, fiber.Map{
			"tag":   symptom.Tag,
			"label": symptom.Label,
			"icon":  symptom.Icon,
		})
	}
	return c.JSON(fiber.Map{
		"flows":    models.ValidFlows(),
		"colors":   models.ColorPalette(),
		"symptoms": symptoms,
	})
}
