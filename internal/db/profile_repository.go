package db

import (
	"github.com/vkotelnikov/sympta/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// Get returns the single profile row, creating an empty one on first access.
func (repo *ProfileRepository) Get() (models.UserProfile, error) {
	profile := models.UserProfile{}
	result := repo.database.Where("id = ?", models.ProfileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.UserProfile{}, result.Error
	}
	if result.RowsAffected == 0 {
		profile = models.UserProfile{ID: models.ProfileID}
		if err := repo.database.Create(&profile).Error; err != nil {
			return models.UserProfile{}, err
		}
	}
	return profile, nil
}

func (repo *ProfileRepository) Save(profile *models.UserProfile) error {
	profile.ID = models.ProfileID
	return repo.database.Save(profile).Error
}
