package cycle

import "time"

type Countdown struct {
	DaysUntil int  `json:"days_until"`
	Overdue   bool `json:"overdue"`
}

// DaysUntilNextPeriod is negative once the predicted start has passed without
// a new record. Both sides are reduced to calendar dates first, so the
// difference is already whole days. The bool is false when there is no
// prediction.
func (analyzer Analyzer) DaysUntilNextPeriod(prediction *Prediction, today time.Time) (int, bool) {
	if prediction == nil || prediction.NextPeriodStart.IsZero() || today.IsZero() {
		return 0, false
	}
	return DaysBetween(today, prediction.NextPeriodStart), true
}

func (analyzer Analyzer) Countdown(prediction *Prediction, today time.Time) (Countdown, bool) {
	days, ok := analyzer.DaysUntilNextPeriod(prediction, today)
	if !ok {
		return Countdown{}, false
	}
	return Countdown{DaysUntil: days, Overdue: days < 0}, true
}

// CurrentCycleDay is the 1-based day of the cycle that started with the most
// recent logged start, or 0 when nothing was logged on or before today.
func (analyzer Analyzer) CurrentCycleDay(records []Record, today time.Time) int {
	if today.IsZero() {
		return 0
	}
	day := DateOnly(today)

	latest := time.Time{}
	for _, record := range records {
		start := DateOnly(record.StartDate)
		if start.IsZero() || start.After(day) {
			continue
		}
		if latest.IsZero() || start.After(latest) {
			latest = start
		}
	}
	if latest.IsZero() {
		return 0
	}
	return DaysBetween(latest, day) + 1
}
