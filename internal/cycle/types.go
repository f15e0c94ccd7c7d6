// Package cycle derives period predictions and calendar day annotations from
// a snapshot of logged cycle records. Callers pass the records and "today"
// explicitly; nothing in this package reads a clock or touches storage.
package cycle

import "time"

const (
	DefaultCycleLength      = 28
	DefaultPeriodDuration   = 5
	DefaultFallbackDuration = 1

	LutealPhaseDays   = 14
	FertileDaysBefore = 5
	FertileDaysAfter  = 1
)

type DayStatus string

const (
	StatusNone      DayStatus = ""
	StatusActual    DayStatus = "actual"
	StatusOvulation DayStatus = "ovulation"
	StatusPredicted DayStatus = "predicted"
	StatusFertile   DayStatus = "fertile"
)

// Record is the date-bearing projection of a logged period. A zero EndDate
// means the end was not logged; Duration is then used when positive.
type Record struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Duration  int
}

type FertileWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Prediction struct {
	NextPeriodStart time.Time     `json:"next_period_start"`
	OvulationDate   time.Time     `json:"ovulation_date"`
	FertileWindow   FertileWindow `json:"fertile_window"`
	AvgCycleLength  int           `json:"avg_cycle_length"`
	AvgDuration     int           `json:"avg_duration"`
}

// Options tunes the fallbacks used when history does not supply a value.
// FallbackDuration is the span assumed for a record that carries neither an
// end date nor an explicit duration.
type Options struct {
	DefaultCycleLength int
	DefaultDuration    int
	FallbackDuration   int
}

func DefaultOptions() Options {
	return Options{
		DefaultCycleLength: DefaultCycleLength,
		DefaultDuration:    DefaultPeriodDuration,
		FallbackDuration:   DefaultFallbackDuration,
	}
}

func (options Options) normalized() Options {
	if options.DefaultCycleLength <= 0 {
		options.DefaultCycleLength = DefaultCycleLength
	}
	if options.DefaultDuration <= 0 {
		options.DefaultDuration = DefaultPeriodDuration
	}
	if options.FallbackDuration <= 0 {
		options.FallbackDuration = DefaultFallbackDuration
	}
	return options
}

// Analyzer holds no state besides its options and is safe for concurrent use.
type Analyzer struct {
	options Options
}

func NewAnalyzer(options Options) Analyzer {
	return Analyzer{options: options.normalized()}
}

func (analyzer Analyzer) Options() Options {
	return analyzer.options.normalized()
}

var defaultAnalyzer = NewAnalyzer(DefaultOptions())

func ComputePrediction(records []Record) *Prediction {
	return defaultAnalyzer.ComputePrediction(records)
}

func ClassifyDay(date time.Time, records []Record, prediction *Prediction) DayStatus {
	return defaultAnalyzer.ClassifyDay(date, records, prediction)
}

func DaysUntilNextPeriod(prediction *Prediction, today time.Time) (int, bool) {
	return defaultAnalyzer.DaysUntilNextPeriod(prediction, today)
}
