package repository

import (
	"errors"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/gorm"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

// GetOrCreate returns the user's settings row, creating the defaults row on
// first access.
func (r *SettingRepository) GetOrCreate(userID uint) (*entity.UserSetting, error) {
	var s entity.UserSetting
	err := r.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entity.UserSetting{
			UserID:             userID,
			EmailNotifications: true,
			PriceAlerts:        true,
			WeatherAlerts:      true,
			Language:           "en",
			Theme:              "light",
		}
		if err := r.DB.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// MergeUpdate applies only the provided fields, leaving the rest untouched.
func (r *SettingRepository) MergeUpdate(userID uint, updates map[string]any) (*entity.UserSetting, error) {
	if _, err := r.GetOrCreate(userID); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.DB.Model(&entity.UserSetting{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	var s entity.UserSetting
	if err := r.DB.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
