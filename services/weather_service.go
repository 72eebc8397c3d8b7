package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/openmeteo"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
)

type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Fishing harbors the forecast job covers.
var DefaultLocations = []Location{
	{Name: "Negombo", Latitude: 7.2083, Longitude: 79.8358},
	{Name: "Colombo", Latitude: 6.9271, Longitude: 79.8612},
	{Name: "Galle", Latitude: 6.0535, Longitude: 80.2210},
	{Name: "Mirissa", Latitude: 5.9483, Longitude: 80.4716},
	{Name: "Trincomalee", Latitude: 8.5874, Longitude: 81.2152},
	{Name: "Jaffna", Latitude: 9.6615, Longitude: 80.0255},
}

const forecastDays = 7

// Fallbacks for optional fields the API sometimes omits; the job must never
// fail on a missing value.
const (
	defaultTemperature   = 27.0
	defaultWindSpeed     = 15.0
	defaultPrecipitation = 0.0
	defaultHumidity      = 80.0
)

type WeatherService struct {
	Repo      *repository.WeatherRepository
	Client    *openmeteo.Client
	Locations []Location
}

func NewWeatherService(repo *repository.WeatherRepository, client *openmeteo.Client) *WeatherService {
	return &WeatherService{Repo: repo, Client: client, Locations: DefaultLocations}
}

// SyncAll fetches a 7-day forecast for every location and upserts one row per
// (date, lat, lng). One location failing never stops the rest; failures are
// logged and the batch carries on.
func (s *WeatherService) SyncAll(ctx context.Context) error {
	for _, loc := range s.Locations {
		if err := s.syncLocation(ctx, loc); err != nil {
			log.Printf("weather sync failed for %s: %v", loc.Name, err)
			continue
		}
	}
	return nil
}

func (s *WeatherService) syncLocation(ctx context.Context, loc Location) error {
	daily, err := s.Client.DailyForecast(ctx, loc.Latitude, loc.Longitude, forecastDays)
	if err != nil {
		return err
	}
	if len(daily.Time) == 0 {
		return errors.New("response has no usable date series")
	}

	for i, ds := range daily.Time {
		date, err := time.Parse("2006-01-02", ds)
		if err != nil {
			log.Printf("weather sync %s: skipping unparsable date %q", loc.Name, ds)
			continue
		}

		f := entity.WeatherForecast{
			ForecastDate:     date,
			Latitude:         loc.Latitude,
			Longitude:        loc.Longitude,
			LocationName:     loc.Name,
			AvgTemperature:   pick(daily.Temperature2MMean, i, defaultTemperature),
			MaxWindSpeed:     pick(daily.WindSpeed10MMax, i, defaultWindSpeed),
			PrecipitationSum: pick(daily.PrecipitationSum, i, defaultPrecipitation),
			AvgHumidity:      pick(daily.RelativeHumidity2MMean, i, defaultHumidity),
		}
		if err := s.Repo.Upsert(&f); err != nil {
			log.Printf("weather sync %s: upsert for %s failed: %v", loc.Name, ds, err)
			continue
		}
	}
	return nil
}

// pick returns the i-th value of a parallel array, or the fallback when the
// array is short or the slot is null.
func pick(vals []*float64, i int, fallback float64) float64 {
	if i < len(vals) && vals[i] != nil {
		return *vals[i]
	}
	return fallback
}

// WeeklyAverage feeds the price-prediction job.
func (s *WeatherService) WeeklyAverage() (*repository.WeeklyAverage, error) {
	return s.Repo.WeeklyAverage(time.Now())
}
