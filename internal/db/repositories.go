package db

import "gorm.io/gorm"

type Repositories struct {
	CycleRecords *CycleRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		CycleRecords: NewCycleRecordRepository(database),
	}
}
