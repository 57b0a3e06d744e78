package db

import "gorm.io/gorm"

type Repositories struct {
	Records *RecordRepository
	Profile *ProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Records: NewRecordRepository(database),
		Profile: NewProfileRepository(database),
	}
}
