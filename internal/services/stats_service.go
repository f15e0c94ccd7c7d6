package services

import (
	"sort"

	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/models"
)

const MaxCycleTrendPoints = 12

type SymptomFrequency struct {
	Tag          string `json:"tag"`
	Label        string `json:"label"`
	Icon         string `json:"icon"`
	Count        int    `json:"count"`
	TotalRecords int    `json:"total_records"`
}

type StatsView struct {
	RecordCount      int                `json:"record_count"`
	CycleLengths     []int              `json:"cycle_lengths"`
	HasTrendData     bool               `json:"has_trend_data"`
	HasReliableTrend bool               `json:"has_reliable_trend"`
	Symptoms         []SymptomFrequency `json:"symptoms"`
}

type StatsService struct {
	records RecordReader
}

func NewStatsService(records RecordReader) *StatsService {
	return &StatsService{records: records}
}

func (service *StatsService) Build(ownerID string) (StatsView, error) {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return StatsView{}, err
	}
	records, err := service.records.ListByOwner(owner)
	if err != nil {
		return StatsView{}, ErrRecordLoadFailed
	}

	lengths := BuildCycleTrend(ToCycleRecords(records))
	return StatsView{
		RecordCount:      len(records),
		CycleLengths:     lengths,
		HasTrendData:     len(lengths) > 0,
		HasReliableTrend: len(lengths) >= 3,
		Symptoms:         CalculateSymptomFrequencies(records),
	}, nil
}

// BuildCycleTrend returns the most recent completed cycle lengths, oldest first.
func BuildCycleTrend(records []cycle.Record) []int {
	return TrimTrailingCycleTrendLengths(cycle.CycleLengths(records), MaxCycleTrendPoints)
}

func TrimTrailingCycleTrendLengths(lengths []int, maxPoints int) []int {
	if maxPoints <= 0 || len(lengths) <= maxPoints {
		return lengths
	}
	return lengths[len(lengths)-maxPoints:]
}

// CalculateSymptomFrequencies counts how many records carry each vocabulary
// tag. Tags outside the vocabulary are skipped.
func CalculateSymptomFrequencies(records []models.CycleRecord) []SymptomFrequency {
	if len(records) == 0 {
		return []SymptomFrequency{}
	}

	counts := make(map[string]int)
	for _, record := range records {
		for _, tag := range record.Symptoms {
			counts[tag]++
		}
	}

	result := make([]SymptomFrequency, 0, len(counts))
	for _, symptom := range models.SymptomVocabulary() {
		count, ok := counts[symptom.Tag]
		if !ok {
			continue
		}
		result = append(result, SymptomFrequency{
			Tag:          symptom.Tag,
			Label:        symptom.Label,
			Icon:         symptom.Icon,
			Count:        count,
			TotalRecords: len(records),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Tag < result[j].Tag
		}
		return result[i].Count > result[j].Count
	})
	return result
}
