package entity

import (
	"time"

	"gorm.io/gorm"
)

// WeatherForecast holds one fetched day for one location. The composite key
// (date, lat, lng) makes the sync job's upsert idempotent — re-running a sync
// overwrites, never duplicates.
type WeatherForecast struct {
	gorm.Model
	ForecastDate time.Time `gorm:"uniqueIndex:idx_forecast_day_loc;not null" json:"forecastDate"`
	Latitude     float64   `gorm:"uniqueIndex:idx_forecast_day_loc;not null" json:"latitude"`
	Longitude    float64   `gorm:"uniqueIndex:idx_forecast_day_loc;not null" json:"longitude"`
	LocationName string    `json:"locationName"`

	AvgTemperature   float64 `json:"avgTemperature"`   // °C
	MaxWindSpeed     float64 `json:"maxWindSpeed"`     // km/h
	PrecipitationSum float64 `json:"precipitationSum"` // mm
	AvgHumidity      float64 `json:"avgHumidity"`      // %
}
