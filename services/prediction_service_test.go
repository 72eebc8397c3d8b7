package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/pricemodel"
	"github.com/GishenCBoraluwa/fisheries-management/repository"

	"gorm.io/gorm"
)

func newPredictionService(db *gorm.DB, baseURL string) *PredictionService {
	return NewPredictionService(
		repository.NewPredictionRepository(db),
		repository.NewFishRepository(db),
		repository.NewWeatherRepository(db),
		pricemodel.NewClient(baseURL),
	)
}

// predictionServer answers with a canned response per fish type name.
func predictionServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req pricemodel.PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		body, ok := responses[req.FishType]
		if !ok {
			t.Errorf("unexpected fish type %q", req.FishType)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(body))
	}))
}

func TestPredictionSync_HorizonIsShorterSeriesCappedAtSeven(t *testing.T) {
	db := newTestDB(t)
	tuna, _ := seedFishTypes(t, db)
	db.Model(&entity.FishType{}).Where("id <> ?", tuna.ID).Update("is_active", false)

	// wholesale has 10 entries, retail only 5 → 5 rows
	srv := predictionServer(t, map[string]string{
		"Yellowfin Tuna": `{
			"success": true,
			"predictions": {
				"avg_ws_price": [900, 910, 920, 930, 940, 950, 960, 970, 980, 990],
				"avg_rt_price": [1100, 1110, 1120, 1130, 1140]
			}
		}`,
	})
	defer srv.Close()

	svc := newPredictionService(db, srv.URL)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}

	var count int64
	db.Model(&entity.DailyPricePrediction{}).Count(&count)
	if count != 5 {
		t.Errorf("expected 5 rows (min of the two series), got %d", count)
	}

	var p entity.DailyPricePrediction
	if err := db.Order("prediction_date").First(&p).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if p.WholesalePrice != 900 || p.RetailPrice != 1100 {
		t.Errorf("unexpected day-0 prices: ws=%v rt=%v", p.WholesalePrice, p.RetailPrice)
	}
	if p.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %v", p.Confidence)
	}
}

func TestPredictionSync_NullDayIsSkipped(t *testing.T) {
	db := newTestDB(t)
	tuna, _ := seedFishTypes(t, db)
	db.Model(&entity.FishType{}).Where("id <> ?", tuna.ID).Update("is_active", false)

	srv := predictionServer(t, map[string]string{
		"Yellowfin Tuna": `{
			"success": true,
			"predictions": {
				"avg_ws_price": [900, 910, 920, 930, 940, 950, 960],
				"avg_rt_price": [1100, 1110, 1120, null, 1140, 1150, 1160]
			}
		}`,
	})
	defer srv.Close()

	svc := newPredictionService(db, srv.URL)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}

	var count int64
	db.Model(&entity.DailyPricePrediction{}).Count(&count)
	if count != 6 {
		t.Errorf("expected 6 rows with day 3 skipped, got %d", count)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var day3 int64
	db.Model(&entity.DailyPricePrediction{}).
		Where("prediction_date = ?", today.AddDate(0, 0, 3)).Count(&day3)
	if day3 != 0 {
		t.Errorf("expected no row for day 3, got %d", day3)
	}
}

func TestPredictionSync_FishTypeFailureIsolated(t *testing.T) {
	db := newTestDB(t)
	tuna, prawns := seedFishTypes(t, db)

	srv := predictionServer(t, map[string]string{
		"Yellowfin Tuna": `{"success": false, "error": "model not trained for this species"}`,
		"Prawns": `{
			"success": true,
			"predictions": {
				"avg_ws_price": [2000, 2010],
				"avg_rt_price": [2500, 2510]
			}
		}`,
	})
	defer srv.Close()

	svc := newPredictionService(db, srv.URL)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("one fish type failing must not raise: %v", err)
	}

	var tunaRows, prawnRows int64
	db.Model(&entity.DailyPricePrediction{}).Where("fish_type_id = ?", tuna.ID).Count(&tunaRows)
	db.Model(&entity.DailyPricePrediction{}).Where("fish_type_id = ?", prawns.ID).Count(&prawnRows)
	if tunaRows != 0 {
		t.Errorf("expected no tuna rows, got %d", tunaRows)
	}
	if prawnRows != 2 {
		t.Errorf("expected 2 prawn rows, got %d", prawnRows)
	}
}

func TestPredictionSync_MissingSeriesFailsFishType(t *testing.T) {
	db := newTestDB(t)
	tuna, _ := seedFishTypes(t, db)
	db.Model(&entity.FishType{}).Where("id <> ?", tuna.ID).Update("is_active", false)

	srv := predictionServer(t, map[string]string{
		"Yellowfin Tuna": `{
			"success": true,
			"predictions": {"avg_ws_price": [900, 910, 920]}
		}`,
	})
	defer srv.Close()

	svc := newPredictionService(db, srv.URL)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync must not raise: %v", err)
	}

	var count int64
	db.Model(&entity.DailyPricePrediction{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 rows without a retail series, got %d", count)
	}
}

func TestPredictionSync_InactiveFishTypesSkipped(t *testing.T) {
	db := newTestDB(t)
	tuna, prawns := seedFishTypes(t, db)
	db.Model(&entity.FishType{}).Where("id = ?", prawns.ID).Update("is_active", false)

	srv := predictionServer(t, map[string]string{
		"Yellowfin Tuna": `{
			"success": true,
			"predictions": {"avg_ws_price": [900], "avg_rt_price": [1100]}
		}`,
	})
	defer srv.Close()

	svc := newPredictionService(db, srv.URL)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}

	var prawnRows, tunaRows int64
	db.Model(&entity.DailyPricePrediction{}).Where("fish_type_id = ?", prawns.ID).Count(&prawnRows)
	db.Model(&entity.DailyPricePrediction{}).Where("fish_type_id = ?", tuna.ID).Count(&tunaRows)
	if prawnRows != 0 {
		t.Errorf("inactive fish type must not be predicted, got %d rows", prawnRows)
	}
	if tunaRows != 1 {
		t.Errorf("expected 1 tuna row, got %d", tunaRows)
	}
}

func TestPredictionSync_RerunOverwrites(t *testing.T) {
	db := newTestDB(t)
	tuna, _ := seedFishTypes(t, db)
	db.Model(&entity.FishType{}).Where("id <> ?", tuna.ID).Update("is_active", false)

	responses := map[string]string{
		"Yellowfin Tuna": `{
			"success": true,
			"predictions": {"avg_ws_price": [900, 910], "avg_rt_price": [1100, 1110]}
		}`,
	}
	srv := predictionServer(t, responses)
	defer srv.Close()

	svc := newPredictionService(db, srv.URL)
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	responses["Yellowfin Tuna"] = `{
		"success": true,
		"predictions": {"avg_ws_price": [950, 960], "avg_rt_price": [1200, 1210]}
	}`
	if err := svc.SyncAll(context.Background()); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	var count int64
	db.Model(&entity.DailyPricePrediction{}).Count(&count)
	if count != 2 {
		t.Errorf("re-sync must not duplicate rows, got %d", count)
	}

	var p entity.DailyPricePrediction
	if err := db.Order("prediction_date").First(&p).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if p.WholesalePrice != 950 || p.RetailPrice != 1200 {
		t.Errorf("expected overwritten prices 950/1200, got %v/%v", p.WholesalePrice, p.RetailPrice)
	}
}
