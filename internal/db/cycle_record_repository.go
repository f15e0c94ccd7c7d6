package db

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/cyclecal/internal/models"
	"gorm.io/gorm"
)

type CycleRecordRepository struct {
	database *gorm.DB
}

func NewCycleRecordRepository(database *gorm.DB) *CycleRecordRepository {
	return &CycleRecordRepository{database: database}
}

func (repo *CycleRecordRepository) ListByOwner(ownerID string) ([]models.CycleRecord, error) {
	return repo.ListByOwnerInRange(ownerID, nil, nil)
}

// ListByOwnerInRange filters on start_date; either bound may be nil.
func (repo *CycleRecordRepository) ListByOwnerInRange(ownerID string, from *time.Time, to *time.Time) ([]models.CycleRecord, error) {
	query := repo.database.Where("owner_id = ?", ownerID)
	if from != nil {
		query = query.Where("start_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_date <= ?", *to)
	}

	records := make([]models.CycleRecord, 0)
	if err := query.Order("start_date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRecordRepository) FindByOwnerAndID(ownerID string, id string) (models.CycleRecord, bool, error) {
	record := models.CycleRecord{}
	result := repo.database.
		Where("owner_id = ? AND id = ?", ownerID, id).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.CycleRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleRecord{}, false, nil
	}
	return record, true, nil
}

// Create assigns the record identifier; callers never choose it.
func (repo *CycleRecordRepository) Create(record *models.CycleRecord) error {
	if strings.TrimSpace(record.ID) == "" {
		record.ID = uuid.NewString()
	}
	return repo.database.Create(record).Error
}

func (repo *CycleRecordRepository) Save(record *models.CycleRecord) error {
	return repo.database.Save(record).Error
}

func (repo *CycleRecordRepository) DeleteByOwnerAndID(ownerID string, id string) (bool, error) {
	result := repo.database.Where("owner_id = ? AND id = ?", ownerID, id).Delete(&models.CycleRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *CycleRecordRepository) DeleteByOwner(ownerID string) (int64, error) {
	result := repo.database.Where("owner_id = ?", ownerID).Delete(&models.CycleRecord{})
	return result.RowsAffected, result.Error
}
