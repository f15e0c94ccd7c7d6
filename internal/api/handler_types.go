package api

import (
	"time"

	"github.com/terraincognita07/cyclecal/internal/services"
)

type Handler struct {
	location *time.Location
	now      func() time.Time
	records  *services.RecordService
	calendar *services.CalendarService
	exports  *services.ExportService
	stats    *services.StatsService
}

type recordPayload struct {
	StartDate string   `json:"start_date" form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" form:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Duration  int      `json:"duration" form:"duration" validate:"gte=0,lte=14"`
	Flow      string   `json:"flow" form:"flow"`
	Color     string   `json:"color" form:"color"`
	Symptoms  []string `json:"symptoms" form:"symptoms" validate:"dive,max=64"`
	Note      string   `json:"note" form:"note"`
}

type recordResponse struct {
	ID        string   `json:"id"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Duration  int      `json:"duration,omitempty"`
	Flow      string   `json:"flow"`
	Color     string   `json:"color,omitempty"`
	Symptoms  []string `json:"symptoms"`
	Note      string   `json:"note,omitempty"`
}

type fertileWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type predictionResponse struct {
	NextPeriodStart string                `json:"next_period_start"`
	OvulationDate   string                `json:"ovulation_date"`
	FertileWindow   fertileWindowResponse `json:"fertile_window"`
	AvgCycleLength  int                   `json:"avg_cycle_length"`
	AvgDuration     int                   `json:"avg_duration"`
}

type countdownResponse struct {
	DaysUntil int  `json:"days_until"`
	Overdue   bool `json:"overdue"`
}

type overviewResponse struct {
	Today           string              `json:"today"`
	RecordCount     int                 `json:"record_count"`
	CurrentCycleDay int                 `json:"current_cycle_day"`
	TodayStatus     string              `json:"today_status"`
	Prediction      *predictionResponse `json:"prediction"`
	Countdown       *countdownResponse  `json:"countdown"`
	CycleLengths    []int               `json:"cycle_lengths"`
}

type calendarDayResponse struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	InMonth bool   `json:"in_month"`
	IsToday bool   `json:"is_today"`
	Status  string `json:"status"`
}

type calendarResponse struct {
	Month      string                `json:"month"`
	Prediction *predictionResponse   `json:"prediction"`
	Days       []calendarDayResponse `json:"days"`
}

type symptomFrequencyResponse struct {
	Tag     string `json:"tag"`
	Label   string `json:"label"`
	Icon    string `json:"icon"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type statsResponse struct {
	RecordCount      int                        `json:"record_count"`
	CycleLengths     []int                      `json:"cycle_lengths"`
	HasTrendData     bool                       `json:"has_trend_data"`
	HasReliableTrend bool                       `json:"has_reliable_trend"`
	Symptoms         []symptomFrequencyResponse `json:"symptoms"`
}
