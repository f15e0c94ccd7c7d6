package services

import (
	"errors"
	"testing"
)

func TestParseExportRange(t *testing.T) {
	t.Parallel()

	exportRange, err := ParseExportRange("", "")
	if err != nil {
		t.Fatalf("expected open range, got %v", err)
	}
	if exportRange.From != nil || exportRange.To != nil {
		t.Fatalf("expected nil bounds, got %+v", exportRange)
	}

	exportRange, err = ParseExportRange(" 2024-01-01 ", "2024-01-01")
	if err != nil {
		t.Fatalf("expected single-day range, got %v", err)
	}
	if exportRange.From == nil || exportRange.To == nil || !exportRange.From.Equal(*exportRange.To) {
		t.Fatalf("expected equal bounds, got %+v", exportRange)
	}

	exportRange, err = ParseExportRange("", "2024-03-01")
	if err != nil {
		t.Fatalf("expected to-only range, got %v", err)
	}
	if exportRange.From != nil || exportRange.To == nil {
		t.Fatalf("expected only upper bound, got %+v", exportRange)
	}
}

func TestParseExportRangeRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from string
		to   string
		want error
	}{
		{name: "bad from", from: "2024-13-01", to: "", want: ErrExportFromDateInvalid},
		{name: "bad to", from: "", to: "yesterday", want: ErrExportToDateInvalid},
		{name: "reversed", from: "2024-02-01", to: "2024-01-31", want: ErrExportRangeInvalid},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseExportRange(testCase.from, testCase.to); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}
