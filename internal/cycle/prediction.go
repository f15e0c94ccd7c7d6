package cycle

import (
	"math"
	"sort"
)

// ComputePrediction projects the next period from the history. It returns nil
// when fewer than two records carry a start date; that is an expected state,
// not a failure. Stale histories are projected forward as-is.
func (analyzer Analyzer) ComputePrediction(records []Record) *Prediction {
	options := analyzer.Options()

	dated := sortedDatedRecords(records)
	if len(dated) < 2 {
		return nil
	}

	avgCycleLength := roundMean(cycleGaps(dated))
	if avgCycleLength <= 0 {
		avgCycleLength = options.DefaultCycleLength
	}

	avgDuration := roundMean(loggedDurations(dated))
	if avgDuration <= 0 {
		avgDuration = options.DefaultDuration
	}

	latestStart := dated[len(dated)-1].StartDate
	nextPeriodStart := addDays(latestStart, avgCycleLength)
	ovulationDate := addDays(nextPeriodStart, -LutealPhaseDays)

	return &Prediction{
		NextPeriodStart: nextPeriodStart,
		OvulationDate:   ovulationDate,
		FertileWindow: FertileWindow{
			Start: addDays(ovulationDate, -FertileDaysBefore),
			End:   addDays(ovulationDate, FertileDaysAfter),
		},
		AvgCycleLength: avgCycleLength,
		AvgDuration:    avgDuration,
	}
}

func sortedDatedRecords(records []Record) []Record {
	dated := make([]Record, 0, len(records))
	for _, record := range records {
		if record.StartDate.IsZero() {
			continue
		}
		dated = append(dated, record)
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return DateOnly(dated[i].StartDate).Before(DateOnly(dated[j].StartDate))
	})
	return dated
}

func cycleGaps(sorted []Record) []int {
	if len(sorted) < 2 {
		return nil
	}
	gaps := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, DaysBetween(sorted[i-1].StartDate, sorted[i].StartDate))
	}
	return gaps
}

// loggedDurations collects period lengths from end dates, or from explicit
// durations when the end was not logged. Inverted ranges are ignored.
func loggedDurations(records []Record) []int {
	durations := make([]int, 0, len(records))
	for _, record := range records {
		switch {
		case !record.EndDate.IsZero():
			if length := DaysBetween(record.StartDate, record.EndDate) + 1; length > 0 {
				durations = append(durations, length)
			}
		case record.Duration > 0:
			durations = append(durations, record.Duration)
		}
	}
	return durations
}

// roundMean returns the mean rounded to the nearest day, or 0 when it is
// undefined.
func roundMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, value := range values {
		total += value
	}
	mean := float64(total) / float64(len(values))
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0
	}
	return int(math.Round(mean))
}

// CycleLengths lists the completed cycle lengths in start order. Records that
// share a start date do not produce a cycle.
func CycleLengths(records []Record) []int {
	lengths := make([]int, 0)
	for _, gap := range cycleGaps(sortedDatedRecords(records)) {
		if gap > 0 {
			lengths = append(lengths, gap)
		}
	}
	return lengths
}
