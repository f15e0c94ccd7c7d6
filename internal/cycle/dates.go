package cycle

import "time"

const dateLayout = "2006-01-02"

// DateOnly returns the calendar date of value (in value's own location) as
// UTC midnight. All arithmetic in this package runs on such values, so day
// differences are exact multiples of 24h regardless of DST.
func DateOnly(value time.Time) time.Time {
	if value.IsZero() {
		return time.Time{}
	}
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func FormatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return DateOnly(value).Format(dateLayout)
}

func addDays(value time.Time, days int) time.Time {
	return DateOnly(value).AddDate(0, 0, days)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns to-from in whole calendar days. It works on Unix
// seconds because time.Duration saturates after roughly 292 years.
func DaysBetween(from time.Time, to time.Time) int {
	return int((DateOnly(to).Unix() - DateOnly(from).Unix()) / secondsPerDay)
}

func betweenInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	day = DateOnly(day)
	return !day.Before(DateOnly(start)) && !day.After(DateOnly(end))
}

func sameDay(a time.Time, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return DateOnly(a).Equal(DateOnly(b))
}
