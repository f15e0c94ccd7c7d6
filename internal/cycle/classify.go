package cycle

import "time"

// ClassifyDay resolves a single calendar date to one status. Logged data wins
// over predictions; the ovulation day wins over the predicted period, which
// wins over the fertile window.
func (analyzer Analyzer) ClassifyDay(date time.Time, records []Record, prediction *Prediction) DayStatus {
	if date.IsZero() {
		return StatusNone
	}
	day := DateOnly(date)

	for _, record := range records {
		if record.StartDate.IsZero() {
			continue
		}
		if betweenInclusive(day, record.StartDate, analyzer.EffectiveEnd(record)) {
			return StatusActual
		}
	}

	if prediction == nil {
		return StatusNone
	}

	if sameDay(day, prediction.OvulationDate) {
		return StatusOvulation
	}

	if prediction.AvgDuration > 0 {
		predictedEnd := addDays(prediction.NextPeriodStart, prediction.AvgDuration-1)
		if betweenInclusive(day, prediction.NextPeriodStart, predictedEnd) {
			return StatusPredicted
		}
	}

	if betweenInclusive(day, prediction.FertileWindow.Start, prediction.FertileWindow.End) {
		return StatusFertile
	}

	return StatusNone
}

// EffectiveEnd is the last day a record covers: its end date, else the day
// implied by its duration, else the configured fallback span.
func (analyzer Analyzer) EffectiveEnd(record Record) time.Time {
	if record.StartDate.IsZero() {
		return time.Time{}
	}
	if !record.EndDate.IsZero() {
		return DateOnly(record.EndDate)
	}
	if record.Duration > 0 {
		return addDays(record.StartDate, record.Duration-1)
	}
	return addDays(record.StartDate, analyzer.Options().FallbackDuration-1)
}
