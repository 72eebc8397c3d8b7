package controllers

import (
	"github.com/GishenCBoraluwa/fisheries-management/pkg/resp"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
	"github.com/GishenCBoraluwa/fisheries-management/utils"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	Repo *repository.SettingRepository
}

func NewSettingController(repo *repository.SettingRepository) *SettingController {
	return &SettingController{Repo: repo}
}

// GET /settings
func (sc *SettingController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	s, err := sc.Repo.GetOrCreate(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

type UpdateSettingsRequest struct {
	EmailNotifications *bool   `json:"emailNotifications"`
	SMSNotifications   *bool   `json:"smsNotifications"`
	PriceAlerts        *bool   `json:"priceAlerts"`
	WeatherAlerts      *bool   `json:"weatherAlerts"`
	Language           *string `json:"language" binding:"omitempty,oneof=en si ta"`
	Theme              *string `json:"theme" binding:"omitempty,oneof=light dark"`
}

// PATCH /settings — merge update, untouched fields keep their values
func (sc *SettingController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.EmailNotifications != nil {
		updates["email_notifications"] = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		updates["sms_notifications"] = *req.SMSNotifications
	}
	if req.PriceAlerts != nil {
		updates["price_alerts"] = *req.PriceAlerts
	}
	if req.WeatherAlerts != nil {
		updates["weather_alerts"] = *req.WeatherAlerts
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}

	s, err := sc.Repo.MergeUpdate(uid, updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}
