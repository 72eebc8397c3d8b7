package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/openmeteo"
	"github.com/GishenCBoraluwa/fisheries-management/repository"

	"gorm.io/gorm"
)

var testLocations = []Location{
	{Name: "Negombo", Latitude: 7.2083, Longitude: 79.8358},
	{Name: "Galle", Latitude: 6.0535, Longitude: 80.2210},
}

func newWeatherService(db *gorm.DB, baseURL string, locations []Location) *WeatherService {
	s := NewWeatherService(repository.NewWeatherRepository(db), openmeteo.NewClient(baseURL))
	s.Locations = locations
	return s
}

// forecastBody builds a 3-day daily payload with the given temperature.
func forecastBody(temp float64) string {
	return fmt.Sprintf(`{
		"daily": {
			"time": ["2026-09-01", "2026-09-02", "2026-09-03"],
			"temperature_2m_mean": [%[1]v, %[1]v, %[1]v],
			"wind_speed_10m_max": [12.5, 14.0, 18.2],
			"precipitation_sum": [0.0, 3.4, 1.1],
			"relative_humidity_2m_mean": [78, 81, 85]
		}
	}`, temp)
}

func TestWeatherSync_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	temp := 26.0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastBody(temp))
	}))
	defer srv.Close()

	svc := newWeatherService(db, srv.URL, testLocations)

	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	var first int64
	db.Model(&entity.WeatherForecast{}).Count(&first)
	if first != int64(3*len(testLocations)) {
		t.Fatalf("expected %d rows, got %d", 3*len(testLocations), first)
	}

	// second run with new values must overwrite, not duplicate
	temp = 31.5
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	var second int64
	db.Model(&entity.WeatherForecast{}).Count(&second)
	if second != first {
		t.Errorf("row count changed on re-sync: %d -> %d", first, second)
	}

	var f entity.WeatherForecast
	if err := db.Where("location_name = ?", "Galle").First(&f).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if f.AvgTemperature != 31.5 {
		t.Errorf("expected second run's temperature 31.5, got %v", f.AvgTemperature)
	}
}

func TestWeatherSync_EmptyTimeSeriesSkipsLocation(t *testing.T) {
	db := newTestDB(t)

	// Galle gets an empty date series, Negombo a normal one.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Query().Get("latitude"), "6.05") {
			fmt.Fprint(w, `{"daily": {"time": []}}`)
			return
		}
		fmt.Fprint(w, forecastBody(27.0))
	}))
	defer srv.Close()

	svc := newWeatherService(db, srv.URL, testLocations)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync must not raise on one bad location: %v", err)
	}

	var galle, negombo int64
	db.Model(&entity.WeatherForecast{}).Where("location_name = ?", "Galle").Count(&galle)
	db.Model(&entity.WeatherForecast{}).Where("location_name = ?", "Negombo").Count(&negombo)
	if galle != 0 {
		t.Errorf("expected zero Galle rows, got %d", galle)
	}
	if negombo != 3 {
		t.Errorf("expected 3 Negombo rows, got %d", negombo)
	}
}

func TestWeatherSync_FetchFailureIsolatedPerLocation(t *testing.T) {
	db := newTestDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Query().Get("latitude"), "6.05") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, forecastBody(27.0))
	}))
	defer srv.Close()

	svc := newWeatherService(db, srv.URL, testLocations)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync must not raise: %v", err)
	}

	var total int64
	db.Model(&entity.WeatherForecast{}).Count(&total)
	if total != 3 {
		t.Errorf("expected the healthy location's 3 rows, got %d", total)
	}
}

func TestWeatherSync_MissingFieldsFallBackToDefaults(t *testing.T) {
	db := newTestDB(t)

	// one day, date only: every metric absent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"daily": {"time": ["2026-09-01"], "temperature_2m_mean": [null]}}`)
	}))
	defer srv.Close()

	svc := newWeatherService(db, srv.URL, testLocations[:1])
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}

	var f entity.WeatherForecast
	if err := db.First(&f).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if f.AvgTemperature != 27.0 || f.MaxWindSpeed != 15.0 || f.PrecipitationSum != 0.0 || f.AvgHumidity != 80.0 {
		t.Errorf("expected defaults 27/15/0/80, got %v/%v/%v/%v",
			f.AvgTemperature, f.MaxWindSpeed, f.PrecipitationSum, f.AvgHumidity)
	}
}

func TestWeatherSync_UnparsableDateSkipsDayOnly(t *testing.T) {
	db := newTestDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"daily": {
				"time": ["2026-09-01", "not-a-date", "2026-09-03"],
				"temperature_2m_mean": [26.0, 26.5, 27.0]
			}
		}`)
	}))
	defer srv.Close()

	svc := newWeatherService(db, srv.URL, testLocations[:1])
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}

	var count int64
	db.Model(&entity.WeatherForecast{}).Count(&count)
	if count != 2 {
		t.Errorf("expected the bad day skipped and 2 rows written, got %d", count)
	}
}

func TestWeeklyAverage_DefaultsOnEmptyTable(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewWeatherRepository(db)

	avg, err := repo.WeeklyAverage(time.Now())
	if err != nil {
		t.Fatalf("weekly average: %v", err)
	}
	if avg.AvgTemperature != 27.0 || avg.AvgWindSpeed != 15.0 || avg.AvgPrecipitation != 2.0 || avg.AvgHumidity != 80.0 {
		t.Errorf("expected defaults 27/15/2/80, got %+v", avg)
	}
}

func TestWeeklyAverage_MeansRecentRows(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewWeatherRepository(db)

	rows := []entity.WeatherForecast{
		{ForecastDate: time.Now(), Latitude: 6.0, Longitude: 80.0, LocationName: "A", AvgTemperature: 24, MaxWindSpeed: 10, PrecipitationSum: 1, AvgHumidity: 70},
		{ForecastDate: time.Now().AddDate(0, 0, 1), Latitude: 7.0, Longitude: 80.0, LocationName: "B", AvgTemperature: 30, MaxWindSpeed: 20, PrecipitationSum: 3, AvgHumidity: 90},
	}
	for i := range rows {
		if err := repo.Upsert(&rows[i]); err != nil {
			t.Fatalf("seed row: %v", err)
		}
	}

	avg, err := repo.WeeklyAverage(time.Now())
	if err != nil {
		t.Fatalf("weekly average: %v", err)
	}
	if avg.AvgTemperature != 27 || avg.AvgWindSpeed != 15 || avg.AvgPrecipitation != 2 || avg.AvgHumidity != 80 {
		t.Errorf("unexpected means: %+v", avg)
	}
}
