package controllers

import (
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/pkg/resp"
	"github.com/GishenCBoraluwa/fisheries-management/repository"

	"github.com/gin-gonic/gin"
)

type WeatherController struct {
	Repo *repository.WeatherRepository
}

func NewWeatherController(repo *repository.WeatherRepository) *WeatherController {
	return &WeatherController{Repo: repo}
}

// GET /weather/latest — newest forecast per harbor
func (wc *WeatherController) Latest(c *gin.Context) {
	items, err := wc.Repo.Latest()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /weather?from=&to=
func (wc *WeatherController) Range(c *gin.Context) {
	to := time.Now().AddDate(0, 0, 7)
	from := time.Now().AddDate(0, 0, -7)
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t
		}
	}

	items, err := wc.Repo.ListByDateRange(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /weather/weekly-average — same numbers fed into the price model
func (wc *WeatherController) WeeklyAverage(c *gin.Context) {
	avg, err := wc.Repo.WeeklyAverage(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, avg)
}
