package pricemodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type WeatherData struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Humidity      float64 `json:"humidity"`
}

type OceanData struct {
	WaveHeight     float64 `json:"wave_height"`
	SeaSurfaceTemp float64 `json:"sea_surface_temp"`
	CurrentSpeed   float64 `json:"current_speed"`
}

type EconomicData struct {
	USDRate       float64 `json:"usd_rate"`
	DieselPrice   float64 `json:"diesel_price"`
	KerosenePrice float64 `json:"kerosene_price"`
}

type PredictRequest struct {
	FishType       string       `json:"fish_type"`
	PredictionDays int          `json:"prediction_days"`
	WeatherData    WeatherData  `json:"weather_data"`
	OceanData      OceanData    `json:"ocean_data"`
	EconomicData   EconomicData `json:"economic_data"`
}

// Price arrays come back as JSON numbers or nulls; pointers keep the
// distinction so missing days can be skipped.
type Predictions struct {
	AvgWsPrice []*float64 `json:"avg_ws_price"`
	AvgRtPrice []*float64 `json:"avg_rt_price"`
}

type PredictResponse struct {
	Success        bool        `json:"success"`
	FishType       string      `json:"fish_type"`
	PredictionDays int         `json:"prediction_days"`
	Predictions    Predictions `json:"predictions"`
	Error          string      `json:"error"`
}

type Client struct {
	BaseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Predict asks the model service for a price forecast for one fish type.
func (c *Client) Predict(ctx context.Context, in *PredictRequest) (*PredictResponse, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction api returned %d", res.StatusCode)
	}

	var body PredictResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}
