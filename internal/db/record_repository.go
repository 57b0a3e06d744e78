package db

import (
	"time"

	"github.com/vkotelnikov/sympta/internal/models"
	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

func (repo *RecordRepository) Create(record *models.SymptomRecord) error {
	return repo.database.Create(record).Error
}

func (repo *RecordRepository) CreateBatch(records []models.SymptomRecord) error {
	if len(records) == 0 {
		return nil
	}
	return repo.database.Create(&records).Error
}

func (repo *RecordRepository) ListAll() ([]models.SymptomRecord, error) {
	records := make([]models.SymptomRecord, 0)
	if err := repo.database.Order("logged_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) ListSince(cutoff time.Time) ([]models.SymptomRecord, error) {
	records := make([]models.SymptomRecord, 0)
	if err := repo.database.
		Where("logged_at >= ?", cutoff).
		Order("logged_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) ListRange(from *time.Time, to *time.Time) ([]models.SymptomRecord, error) {
	query := repo.database.Model(&models.SymptomRecord{})
	if from != nil {
		query = query.Where("logged_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("logged_at < ?", *to)
	}

	records := make([]models.SymptomRecord, 0)
	if err := query.Order("logged_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) FindByID(recordID string) (models.SymptomRecord, bool, error) {
	record := models.SymptomRecord{}
	result := repo.database.Where("id = ?", recordID).Limit(1).Find(&record)
	if result.Error != nil {
		return models.SymptomRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SymptomRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *RecordRepository) DeleteByID(recordID string) (bool, error) {
	result := repo.database.Where("id = ?", recordID).Delete(&models.SymptomRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *RecordRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.SymptomRecord{}).Error
}

func (repo *RecordRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SymptomRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
