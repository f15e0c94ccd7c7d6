package services

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/terraincognita07/cyclecal/internal/models"
)

type recordRepositoryStub struct {
	records   map[string]models.CycleRecord
	nextID    int
	listErr   error
	findErr   error
	createErr error
	saveErr   error
	deleteErr error
}

func newRecordRepositoryStub() *recordRepositoryStub {
	return &recordRepositoryStub{records: make(map[string]models.CycleRecord), nextID: 1}
}

func (stub *recordRepositoryStub) ListByOwner(ownerID string) ([]models.CycleRecord, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	records := make([]models.CycleRecord, 0)
	for _, record := range stub.records {
		if record.OwnerID == ownerID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].StartDate.Before(records[j].StartDate)
	})
	return records, nil
}

func (stub *recordRepositoryStub) ListByOwnerInRange(ownerID string, from *time.Time, to *time.Time) ([]models.CycleRecord, error) {
	records, err := stub.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.CycleRecord, 0, len(records))
	for _, record := range records {
		if from != nil && record.StartDate.Before(*from) {
			continue
		}
		if to != nil && record.StartDate.After(*to) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered, nil
}

func (stub *recordRepositoryStub) FindByOwnerAndID(ownerID string, id string) (models.CycleRecord, bool, error) {
	if stub.findErr != nil {
		return models.CycleRecord{}, false, stub.findErr
	}
	record, ok := stub.records[id]
	if !ok || record.OwnerID != ownerID {
		return models.CycleRecord{}, false, nil
	}
	return record, true, nil
}

func (stub *recordRepositoryStub) Create(record *models.CycleRecord) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	record.ID = fmt.Sprintf("rec-%d", stub.nextID)
	stub.nextID++
	stub.records[record.ID] = *record
	return nil
}

func (stub *recordRepositoryStub) Save(record *models.CycleRecord) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.records[record.ID] = *record
	return nil
}

func (stub *recordRepositoryStub) DeleteByOwnerAndID(ownerID string, id string) (bool, error) {
	if stub.deleteErr != nil {
		return false, stub.deleteErr
	}
	record, ok := stub.records[id]
	if !ok || record.OwnerID != ownerID {
		return false, nil
	}
	delete(stub.records, id)
	return true, nil
}

func (stub *recordRepositoryStub) DeleteByOwner(ownerID string) (int64, error) {
	if stub.deleteErr != nil {
		return 0, stub.deleteErr
	}
	removed := int64(0)
	for id, record := range stub.records {
		if record.OwnerID == ownerID {
			delete(stub.records, id)
			removed++
		}
	}
	return removed, nil
}

func (stub *recordRepositoryStub) seed(t *testing.T, ownerID string, start string, end string) models.CycleRecord {
	t.Helper()
	record := models.CycleRecord{OwnerID: ownerID, StartDate: mustParseDay(t, start), Flow: models.FlowMedium}
	if end != "" {
		endDate := mustParseDay(t, end)
		record.EndDate = &endDate
	}
	if err := stub.Create(&record); err != nil {
		t.Fatalf("seed record: %v", err)
	}
	return record
}

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}
