package repository

import (
	"errors"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/gorm"
)

type WeatherRepository struct {
	DB *gorm.DB
}

func NewWeatherRepository(db *gorm.DB) *WeatherRepository {
	return &WeatherRepository{DB: db}
}

// Upsert keeps at most one row per (date, lat, lng); a re-sync overwrites the
// previous values for that key.
func (r *WeatherRepository) Upsert(f *entity.WeatherForecast) error {
	var existing entity.WeatherForecast
	err := r.DB.Where("forecast_date = ? AND latitude = ? AND longitude = ?",
		f.ForecastDate, f.Latitude, f.Longitude).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(f).Error
	}
	if err != nil {
		return err
	}
	return r.DB.Model(&existing).Updates(map[string]any{
		"location_name":     f.LocationName,
		"avg_temperature":   f.AvgTemperature,
		"max_wind_speed":    f.MaxWindSpeed,
		"precipitation_sum": f.PrecipitationSum,
		"avg_humidity":      f.AvgHumidity,
	}).Error
}

func (r *WeatherRepository) ListByDateRange(from, to time.Time) ([]entity.WeatherForecast, error) {
	var out []entity.WeatherForecast
	err := r.DB.Where("forecast_date >= ? AND forecast_date <= ?", from, to).
		Order("forecast_date, location_name").
		Find(&out).Error
	return out, err
}

// Latest returns the most recently written row per location name.
func (r *WeatherRepository) Latest() ([]entity.WeatherForecast, error) {
	var out []entity.WeatherForecast
	err := r.DB.Raw(`
		SELECT w.* FROM weather_forecasts w
		JOIN (
			SELECT location_name, MAX(forecast_date) AS max_date
			FROM weather_forecasts
			WHERE deleted_at IS NULL
			GROUP BY location_name
		) m ON m.location_name = w.location_name AND m.max_date = w.forecast_date
		WHERE w.deleted_at IS NULL
		ORDER BY w.location_name`).Scan(&out).Error
	return out, err
}

// WeeklyAverage is the trailing-7-day mean of each metric across all rows
// written in that window. Seeds the prediction job even when the table is
// empty, via fixed defaults.
type WeeklyAverage struct {
	AvgTemperature   float64 `json:"avgTemperature"`
	AvgWindSpeed     float64 `json:"avgWindSpeed"`
	AvgPrecipitation float64 `json:"avgPrecipitation"`
	AvgHumidity      float64 `json:"avgHumidity"`
}

func (r *WeatherRepository) WeeklyAverage(now time.Time) (*WeeklyAverage, error) {
	since := now.AddDate(0, 0, -7)

	var row struct {
		Temp   *float64
		Wind   *float64
		Precip *float64
		Hum    *float64
	}
	err := r.DB.Model(&entity.WeatherForecast{}).
		Select("AVG(avg_temperature) AS temp, AVG(max_wind_speed) AS wind, AVG(precipitation_sum) AS precip, AVG(avg_humidity) AS hum").
		Where("created_at >= ?", since).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	out := &WeeklyAverage{AvgTemperature: 27.0, AvgWindSpeed: 15.0, AvgPrecipitation: 2.0, AvgHumidity: 80.0}
	if row.Temp != nil {
		out.AvgTemperature = *row.Temp
	}
	if row.Wind != nil {
		out.AvgWindSpeed = *row.Wind
	}
	if row.Precip != nil {
		out.AvgPrecipitation = *row.Precip
	}
	if row.Hum != nil {
		out.AvgHumidity = *row.Hum
	}
	return out, nil
}
