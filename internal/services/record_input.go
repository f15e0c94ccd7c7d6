package services

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/models"
)

const (
	MaxRecordDays       = 14
	MaxRecordNoteLength = 2000
)

var (
	ErrOwnerInvalid             = errors.New("owner invalid")
	ErrRecordStartRequired      = errors.New("record start date required")
	ErrRecordEndBeforeStart     = errors.New("record end date before start date")
	ErrRecordSpanTooLong        = errors.New("record span too long")
	ErrRecordDurationOutOfRange = errors.New("record duration out of range")
	ErrRecordInvalidFlow        = errors.New("record flow invalid")
	ErrRecordInvalidColor       = errors.New("record color invalid")
	ErrRecordInvalidSymptom     = errors.New("record symptom invalid")
)

var ownerIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

type RecordInput struct {
	StartDate time.Time
	EndDate   *time.Time
	Duration  int
	Flow      string
	Color     string
	Symptoms  []string
	Note      string
}

func NormalizeOwnerID(raw string) (string, error) {
	owner := strings.TrimSpace(raw)
	if !ownerIDPattern.MatchString(owner) {
		return "", ErrOwnerInvalid
	}
	return owner, nil
}

// NormalizeRecordInput validates a record before it reaches the store. An end
// date makes an explicit duration redundant, so the duration is dropped.
func NormalizeRecordInput(input RecordInput) (RecordInput, error) {
	if input.StartDate.IsZero() {
		return input, ErrRecordStartRequired
	}
	input.StartDate = cycle.DateOnly(input.StartDate)

	if input.EndDate != nil {
		end := cycle.DateOnly(*input.EndDate)
		if end.Before(input.StartDate) {
			return input, ErrRecordEndBeforeStart
		}
		if cycle.DaysBetween(input.StartDate, end)+1 > MaxRecordDays {
			return input, ErrRecordSpanTooLong
		}
		input.EndDate = &end
		input.Duration = 0
	} else if input.Duration < 0 || input.Duration > MaxRecordDays {
		return input, ErrRecordDurationOutOfRange
	}

	input.Flow = strings.ToLower(strings.TrimSpace(input.Flow))
	if input.Flow == "" {
		input.Flow = models.FlowMedium
	}
	if !IsValidRecordFlow(input.Flow) {
		return input, ErrRecordInvalidFlow
	}

	input.Color = strings.ToLower(strings.TrimSpace(input.Color))
	if input.Color != "" && !IsValidRecordColor(input.Color) {
		return input, ErrRecordInvalidColor
	}

	symptoms, err := normalizeSymptomTags(input.Symptoms)
	if err != nil {
		return input, err
	}
	input.Symptoms = symptoms

	input.Note = TrimRecordNote(strings.TrimSpace(input.Note))
	return input, nil
}

func IsValidRecordFlow(flow string) bool {
	for _, candidate := range models.ValidFlows() {
		if flow == candidate {
			return true
		}
	}
	return false
}

func IsValidRecordColor(color string) bool {
	for _, candidate := range models.ColorPalette() {
		if color == candidate {
			return true
		}
	}
	return false
}

func normalizeSymptomTags(raw []string) ([]string, error) {
	known := make(map[string]bool)
	for _, symptom := range models.SymptomVocabulary() {
		known[symptom.Tag] = true
	}

	seen := make(map[string]bool, len(raw))
	tags := make([]string, 0, len(raw))
	for _, value := range raw {
		tag := strings.ToLower(strings.TrimSpace(value))
		tag = strings.ReplaceAll(tag, " ", "_")
		if tag == "" {
			continue
		}
		if !known[tag] {
			return nil, ErrRecordInvalidSymptom
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// TrimRecordNote caps the note at MaxRecordNoteLength characters.
func TrimRecordNote(value string) string {
	runes := []rune(value)
	if len(runes) <= MaxRecordNoteLength {
		return value
	}
	return strings.TrimSpace(string(runes[:MaxRecordNoteLength]))
}
