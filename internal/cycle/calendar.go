package cycle

import "time"

type CalendarDay struct {
	Date       time.Time `json:"-"`
	DateString string    `json:"date"`
	Day        int       `json:"day"`
	InMonth    bool      `json:"in_month"`
	IsToday    bool      `json:"is_today"`
	Status     DayStatus `json:"status"`
}

// BuildMonth lays out the Sunday-aligned grid covering monthStart's month and
// classifies every cell.
func (analyzer Analyzer) BuildMonth(monthStart time.Time, records []Record, prediction *Prediction, today time.Time) []CalendarDay {
	first := MonthStart(monthStart)
	last := first.AddDate(0, 1, -1)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	todayKey := FormatDate(today)

	days := make([]CalendarDay, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		days = append(days, CalendarDay{
			Date:       day,
			DateString: key,
			Day:        day.Day(),
			InMonth:    day.Month() == first.Month(),
			IsToday:    key == todayKey,
			Status:     analyzer.ClassifyDay(day, records, prediction),
		})
	}
	return days
}

func MonthStart(value time.Time) time.Time {
	day := DateOnly(value)
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}
