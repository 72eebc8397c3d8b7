package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/pricemodel"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
)

const (
	predictionHorizonDays = 7
	modelConfidence       = 0.95
)

// Static inputs the model expects alongside the live weather average. Updated
// by hand when the indicators move meaningfully.
var (
	staticOceanData = pricemodel.OceanData{
		WaveHeight:     1.2,
		SeaSurfaceTemp: 28.5,
		CurrentSpeed:   0.4,
	}
	staticEconomicData = pricemodel.EconomicData{
		USDRate:       305.0,
		DieselPrice:   329.0,
		KerosenePrice: 243.0,
	}
)

type PredictionService struct {
	Repo        *repository.PredictionRepository
	FishRepo    *repository.FishRepository
	WeatherRepo *repository.WeatherRepository
	Client      *pricemodel.Client
}

func NewPredictionService(
	repo *repository.PredictionRepository,
	fishRepo *repository.FishRepository,
	weatherRepo *repository.WeatherRepository,
	client *pricemodel.Client,
) *PredictionService {
	return &PredictionService{Repo: repo, FishRepo: fishRepo, WeatherRepo: weatherRepo, Client: client}
}

// SyncAll asks the model for a 7-day price forecast per active fish type and
// upserts one row per (fish type, date). A fish type failing never stops the
// rest of the batch.
func (s *PredictionService) SyncAll(ctx context.Context) error {
	fishTypes, err := s.FishRepo.ListActive()
	if err != nil {
		return err
	}

	avg, err := s.WeatherRepo.WeeklyAverage(time.Now())
	if err != nil {
		return err
	}
	weather := pricemodel.WeatherData{
		Temperature:   avg.AvgTemperature,
		WindSpeed:     avg.AvgWindSpeed,
		Precipitation: avg.AvgPrecipitation,
		Humidity:      avg.AvgHumidity,
	}

	for _, ft := range fishTypes {
		if err := s.syncFishType(ctx, &ft, weather); err != nil {
			log.Printf("price prediction failed for %s: %v", ft.Name, err)
			continue
		}
	}
	return nil
}

func (s *PredictionService) syncFishType(ctx context.Context, ft *entity.FishType, weather pricemodel.WeatherData) error {
	res, err := s.Client.Predict(ctx, &pricemodel.PredictRequest{
		FishType:       ft.Name,
		PredictionDays: predictionHorizonDays,
		WeatherData:    weather,
		OceanData:      staticOceanData,
		EconomicData:   staticEconomicData,
	})
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("model returned failure: %s", res.Error)
	}

	ws := res.Predictions.AvgWsPrice
	rt := res.Predictions.AvgRtPrice
	if len(ws) == 0 || len(rt) == 0 {
		return errors.New("response missing wholesale or retail series")
	}

	// Effective horizon: shorter of the two series, capped at 7 days.
	horizon := len(ws)
	if len(rt) < horizon {
		horizon = len(rt)
	}
	if horizon > predictionHorizonDays {
		horizon = predictionHorizonDays
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := 0; i < horizon; i++ {
		if ws[i] == nil || rt[i] == nil {
			log.Printf("price prediction %s: day %d has no price, skipping", ft.Name, i)
			continue
		}
		p := entity.DailyPricePrediction{
			FishTypeID:     ft.ID,
			PredictionDate: today.AddDate(0, 0, i),
			RetailPrice:    *rt[i],
			WholesalePrice: *ws[i],
			Confidence:     modelConfidence,
		}
		if err := s.Repo.Upsert(&p); err != nil {
			log.Printf("price prediction %s: upsert for day %d failed: %v", ft.Name, i, err)
			continue
		}
	}
	return nil
}
