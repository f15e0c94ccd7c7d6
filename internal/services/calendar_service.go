package services

import (
	"time"

	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/models"
)

type RecordReader interface {
	ListByOwner(ownerID string) ([]models.CycleRecord, error)
}

// CalendarService loads one snapshot of an owner's records per call and hands
// it to the analyzer. Nothing is cached between calls.
type CalendarService struct {
	records  RecordReader
	analyzer cycle.Analyzer
}

type CycleOverview struct {
	Today           string            `json:"today"`
	RecordCount     int               `json:"record_count"`
	CurrentCycleDay int               `json:"current_cycle_day"`
	TodayStatus     cycle.DayStatus   `json:"today_status"`
	Prediction      *cycle.Prediction `json:"prediction"`
	Countdown       *cycle.Countdown  `json:"countdown"`
	CycleLengths    []int             `json:"cycle_lengths"`
}

type MonthView struct {
	Month      string              `json:"month"`
	Prediction *cycle.Prediction   `json:"prediction"`
	Days       []cycle.CalendarDay `json:"days"`
}

type DayView struct {
	Date   string          `json:"date"`
	Status cycle.DayStatus `json:"status"`
}

func NewCalendarService(records RecordReader, analyzer cycle.Analyzer) *CalendarService {
	return &CalendarService{records: records, analyzer: analyzer}
}

func (service *CalendarService) Overview(ownerID string, today time.Time) (CycleOverview, error) {
	snapshot, err := service.snapshot(ownerID)
	if err != nil {
		return CycleOverview{}, err
	}

	prediction := service.analyzer.ComputePrediction(snapshot)
	overview := CycleOverview{
		Today:           cycle.FormatDate(today),
		RecordCount:     len(snapshot),
		CurrentCycleDay: service.analyzer.CurrentCycleDay(snapshot, today),
		TodayStatus:     service.analyzer.ClassifyDay(today, snapshot, prediction),
		Prediction:      prediction,
		CycleLengths:    BuildCycleTrend(snapshot),
	}
	if countdown, ok := service.analyzer.Countdown(prediction, today); ok {
		overview.Countdown = &countdown
	}
	return overview, nil
}

func (service *CalendarService) Month(ownerID string, month time.Time, today time.Time) (MonthView, error) {
	snapshot, err := service.snapshot(ownerID)
	if err != nil {
		return MonthView{}, err
	}

	prediction := service.analyzer.ComputePrediction(snapshot)
	monthStart := cycle.MonthStart(month)
	return MonthView{
		Month:      monthStart.Format("2006-01"),
		Prediction: prediction,
		Days:       service.analyzer.BuildMonth(monthStart, snapshot, prediction, today),
	}, nil
}

func (service *CalendarService) Day(ownerID string, day time.Time) (DayView, error) {
	snapshot, err := service.snapshot(ownerID)
	if err != nil {
		return DayView{}, err
	}

	prediction := service.analyzer.ComputePrediction(snapshot)
	return DayView{
		Date:   cycle.FormatDate(day),
		Status: service.analyzer.ClassifyDay(day, snapshot, prediction),
	}, nil
}

func (service *CalendarService) snapshot(ownerID string) ([]cycle.Record, error) {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	records, err := service.records.ListByOwner(owner)
	if err != nil {
		return nil, ErrRecordLoadFailed
	}
	return ToCycleRecords(records), nil
}

func ToCycleRecords(records []models.CycleRecord) []cycle.Record {
	converted := make([]cycle.Record, 0, len(records))
	for _, record := range records {
		entry := cycle.Record{
			ID:        record.ID,
			StartDate: cycle.DateOnly(record.StartDate),
			Duration:  record.Duration,
		}
		if record.EndDate != nil {
			entry.EndDate = cycle.DateOnly(*record.EndDate)
		}
		converted = append(converted, entry)
	}
	return converted
}
