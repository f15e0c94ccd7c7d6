package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/db"
	"github.com/terraincognita07/cyclecal/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, location *time.Location, options cycle.Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)
	analyzer := cycle.NewAnalyzer(options)

	return &Handler{
		location: location,
		now:      time.Now,
		records:  services.NewRecordService(repositories.CycleRecords),
		calendar: services.NewCalendarService(repositories.CycleRecords, analyzer),
		exports:  services.NewExportService(repositories.CycleRecords, analyzer),
		stats:    services.NewStatsService(repositories.CycleRecords),
	}, nil
}

// WithClock replaces the clock used when a request does not pin "today".
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	if now != nil {
		handler.now = now
	}
	return handler
}
