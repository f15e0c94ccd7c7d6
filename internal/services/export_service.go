package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/models"
)

var ExportCSVHeaders = []string{
	"ID",
	"Start",
	"End",
	"Days",
	"Flow",
	"Color",
	"Symptoms",
	"Note",
}

type ExportRecordReader interface {
	ListByOwnerInRange(ownerID string, from *time.Time, to *time.Time) ([]models.CycleRecord, error)
}

type ExportService struct {
	records  ExportRecordReader
	analyzer cycle.Analyzer
}

func NewExportService(records ExportRecordReader, analyzer cycle.Analyzer) *ExportService {
	return &ExportService{records: records, analyzer: analyzer}
}

// BuildCSVRows returns one row per record whose start date falls inside
// exportRange, in start order.
func (service *ExportService) BuildCSVRows(ownerID string, exportRange ExportRange) ([][]string, error) {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	records, err := service.records.ListByOwnerInRange(owner, exportRange.From, exportRange.To)
	if err != nil {
		return nil, ErrRecordLoadFailed
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, service.csvRow(record))
	}
	return rows, nil
}

// csvRow reports the span the calendar actually shades, so records without an
// end date export their effective end.
func (service *ExportService) csvRow(record models.CycleRecord) []string {
	converted := ToCycleRecords([]models.CycleRecord{record})[0]
	effectiveEnd := service.analyzer.EffectiveEnd(converted)
	days := cycle.DaysBetween(converted.StartDate, effectiveEnd) + 1

	end := ""
	if record.EndDate != nil {
		end = cycle.FormatDate(*record.EndDate)
	}

	return []string{
		record.ID,
		cycle.FormatDate(record.StartDate),
		end,
		strconv.Itoa(days),
		record.Flow,
		record.Color,
		strings.Join(record.Symptoms, "; "),
		record.Note,
	}
}
