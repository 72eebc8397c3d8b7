package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Daily fields requested from the forecast API. The response carries one
// parallel array per field, aligned with Daily.Time.
var dailyFields = []string{
	"temperature_2m_mean",
	"wind_speed_10m_max",
	"wind_gusts_10m_max",
	"cloud_cover_mean",
	"precipitation_sum",
	"relative_humidity_2m_mean",
}

type Daily struct {
	Time                   []string   `json:"time"`
	Temperature2MMean      []*float64 `json:"temperature_2m_mean"`
	WindSpeed10MMax        []*float64 `json:"wind_speed_10m_max"`
	WindGusts10MMax        []*float64 `json:"wind_gusts_10m_max"`
	CloudCoverMean         []*float64 `json:"cloud_cover_mean"`
	PrecipitationSum       []*float64 `json:"precipitation_sum"`
	RelativeHumidity2MMean []*float64 `json:"relative_humidity_2m_mean"`
}

type forecastResponse struct {
	Daily Daily `json:"daily"`
}

type Client struct {
	BaseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// DailyForecast fetches a multi-day daily forecast for one coordinate.
func (c *Client) DailyForecast(ctx context.Context, lat, lng float64, days int) (*Daily, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lng, 'f', 4, 64))
	q.Set("daily", strings.Join(dailyFields, ","))
	q.Set("forecast_days", strconv.Itoa(days))
	q.Set("timezone", "Asia/Colombo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api returned %d", res.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body.Daily, nil
}
