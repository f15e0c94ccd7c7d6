package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/terraincognita07/cyclecal/internal/models"
)

func TestTrimTrailingCycleTrendLengths(t *testing.T) {
	t.Parallel()

	source := []int{1, 2, 3, 4, 5}
	unchanged := TrimTrailingCycleTrendLengths(source, 10)
	if !reflect.DeepEqual(unchanged, source) {
		t.Fatalf("expected unchanged lengths, got %#v", unchanged)
	}

	trimmed := TrimTrailingCycleTrendLengths(source, 3)
	if !reflect.DeepEqual(trimmed, []int{3, 4, 5}) {
		t.Fatalf("expected trailing lengths [3 4 5], got %#v", trimmed)
	}

	if got := TrimTrailingCycleTrendLengths(source, 0); !reflect.DeepEqual(got, source) {
		t.Fatalf("expected non-positive limit to keep lengths, got %#v", got)
	}
}

func TestCalculateSymptomFrequencies(t *testing.T) {
	t.Parallel()

	records := []models.CycleRecord{
		{Symptoms: []string{"fatigue", "cramps"}},
		{Symptoms: []string{"cramps"}},
		{Symptoms: []string{"acne", "fatigue"}},
		{},
	}

	got := CalculateSymptomFrequencies(records)
	want := []SymptomFrequency{
		{Tag: "cramps", Label: "Cramps", Icon: "🩸", Count: 2, TotalRecords: 4},
		{Tag: "fatigue", Label: "Fatigue", Icon: "😴", Count: 2, TotalRecords: 4},
		{Tag: "acne", Label: "Acne", Icon: "🔴", Count: 1, TotalRecords: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if empty := CalculateSymptomFrequencies(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil frequencies, got %#v", empty)
	}
}

func TestStatsServiceBuild(t *testing.T) {
	t.Parallel()

	repo := newRecordRepositoryStub()
	first := repo.seed(t, "alice", "2024-01-01", "2024-01-05")
	repo.seed(t, "alice", "2024-01-29", "")
	repo.seed(t, "alice", "2024-02-28", "")
	repo.seed(t, "alice", "2024-03-27", "")
	repo.seed(t, "bob", "2024-01-15", "")

	withSymptoms := repo.records[first.ID]
	withSymptoms.Symptoms = []string{"headache"}
	repo.records[first.ID] = withSymptoms

	view, err := NewStatsService(repo).Build("alice")
	if err != nil {
		t.Fatalf("build stats: %v", err)
	}
	if view.RecordCount != 4 {
		t.Fatalf("expected 4 records, got %d", view.RecordCount)
	}
	if !reflect.DeepEqual(view.CycleLengths, []int{28, 30, 28}) {
		t.Fatalf("unexpected cycle lengths %v", view.CycleLengths)
	}
	if !view.HasTrendData || !view.HasReliableTrend {
		t.Fatalf("expected reliable trend flags, got %+v", view)
	}
	if len(view.Symptoms) != 1 || view.Symptoms[0].Tag != "headache" || view.Symptoms[0].TotalRecords != 4 {
		t.Fatalf("unexpected symptom frequencies %+v", view.Symptoms)
	}
}

func TestStatsServiceBuildMapsFailures(t *testing.T) {
	t.Parallel()

	repo := newRecordRepositoryStub()
	repo.listErr = errors.New("disk gone")
	if _, err := NewStatsService(repo).Build("alice"); !errors.Is(err, ErrRecordLoadFailed) {
		t.Fatalf("expected ErrRecordLoadFailed, got %v", err)
	}
	if _, err := NewStatsService(newRecordRepositoryStub()).Build("  "); !errors.Is(err, ErrOwnerInvalid) {
		t.Fatalf("expected ErrOwnerInvalid, got %v", err)
	}
}
