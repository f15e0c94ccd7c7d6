package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/cyclecal/internal/cycle"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ExportRange bounds an export by record start date. A nil bound is open.
type ExportRange struct {
	From *time.Time
	To   *time.Time
}

func ParseExportRange(rawFrom string, rawTo string) (ExportRange, error) {
	from, err := parseExportBound(rawFrom, ErrExportFromDateInvalid)
	if err != nil {
		return ExportRange{}, err
	}
	to, err := parseExportBound(rawTo, ErrExportToDateInvalid)
	if err != nil {
		return ExportRange{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return ExportRange{}, ErrExportRangeInvalid
	}
	return ExportRange{From: from, To: to}, nil
}

func parseExportBound(raw string, invalid error) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := cycle.ParseDate(raw)
	if err != nil {
		return nil, invalid
	}
	return &parsed, nil
}
