package services

import (
	"errors"

	"github.com/terraincognita07/cyclecal/internal/models"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrRecordLoadFailed   = errors.New("load records failed")
	ErrRecordCreateFailed = errors.New("create record failed")
	ErrRecordUpdateFailed = errors.New("update record failed")
	ErrRecordDeleteFailed = errors.New("delete record failed")
)

type RecordRepository interface {
	ListByOwner(ownerID string) ([]models.CycleRecord, error)
	FindByOwnerAndID(ownerID string, id string) (models.CycleRecord, bool, error)
	Create(record *models.CycleRecord) error
	Save(record *models.CycleRecord) error
	DeleteByOwnerAndID(ownerID string, id string) (bool, error)
	DeleteByOwner(ownerID string) (int64, error)
}

type RecordService struct {
	records RecordRepository
}

func NewRecordService(records RecordRepository) *RecordService {
	return &RecordService{records: records}
}

func (service *RecordService) ListRecords(ownerID string) ([]models.CycleRecord, error) {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return nil, err
	}
	records, err := service.records.ListByOwner(owner)
	if err != nil {
		return nil, ErrRecordLoadFailed
	}
	return records, nil
}

func (service *RecordService) CreateRecord(ownerID string, input RecordInput) (models.CycleRecord, error) {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return models.CycleRecord{}, err
	}
	normalized, err := NormalizeRecordInput(input)
	if err != nil {
		return models.CycleRecord{}, err
	}

	record := models.CycleRecord{OwnerID: owner}
	applyRecordInput(&record, normalized)
	if err := service.records.Create(&record); err != nil {
		return models.CycleRecord{}, ErrRecordCreateFailed
	}
	return record, nil
}

func (service *RecordService) UpdateRecord(ownerID string, id string, input RecordInput) (models.CycleRecord, error) {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return models.CycleRecord{}, err
	}
	normalized, err := NormalizeRecordInput(input)
	if err != nil {
		return models.CycleRecord{}, err
	}

	record, found, err := service.records.FindByOwnerAndID(owner, id)
	if err != nil {
		return models.CycleRecord{}, ErrRecordLoadFailed
	}
	if !found {
		return models.CycleRecord{}, ErrRecordNotFound
	}

	applyRecordInput(&record, normalized)
	if err := service.records.Save(&record); err != nil {
		return models.CycleRecord{}, ErrRecordUpdateFailed
	}
	return record, nil
}

func (service *RecordService) DeleteRecord(ownerID string, id string) error {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return err
	}
	deleted, err := service.records.DeleteByOwnerAndID(owner, id)
	if err != nil {
		return ErrRecordDeleteFailed
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

// ClearRecords removes every record the owner has logged and reports how many
// were deleted.
func (service *RecordService) ClearRecords(ownerID string) (int64, error) {
	owner, err := NormalizeOwnerID(ownerID)
	if err != nil {
		return 0, err
	}
	removed, err := service.records.DeleteByOwner(owner)
	if err != nil {
		return 0, ErrRecordDeleteFailed
	}
	return removed, nil
}

func applyRecordInput(record *models.CycleRecord, input RecordInput) {
	record.StartDate = input.StartDate
	record.EndDate = input.EndDate
	record.Duration = input.Duration
	record.Flow = input.Flow
	record.Color = input.Color
	record.Symptoms = input.Symptoms
	record.Note = input.Note
}
