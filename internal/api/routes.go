package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")
	api.Get("/catalog", handler.GetCatalog)

	owners := api.Group("/owners/:owner")
	owners.Get("/records", handler.OwnerRequired, handler.ListRecords)
	owners.Post("/records", handler.OwnerRequired, handler.CreateRecord)
	owners.Delete("/records", handler.OwnerRequired, handler.ClearRecords)
	owners.Put("/records/:id", handler.OwnerRequired, handler.UpdateRecord)
	owners.Delete("/records/:id", handler.OwnerRequired, handler.DeleteRecord)

	owners.Get("/prediction", handler.OwnerRequired, handler.GetPrediction)
	owners.Get("/calendar", handler.OwnerRequired, handler.GetCalendar)
	owners.Get("/days/:date", handler.OwnerRequired, handler.GetDayStatus)
	owners.Get("/stats", handler.OwnerRequired, handler.GetStats)

	owners.Get("/export/csv", handler.OwnerRequired, handler.ExportCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
