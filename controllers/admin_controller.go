package controllers

import (
	"net/http"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Dashboard: headline numbers
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var ordersToday int64
	var pendingOrders int64
	var trucksOnRoute int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count users failed"})
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ?", start).
		Count(&ordersToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count orders today failed"})
		return
	}

	if err := db.Model(&entity.Order{}).
		Where("status = ?", entity.OrderStatusPending).
		Count(&pendingOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count pending orders failed"})
		return
	}

	if err := db.Model(&entity.Truck{}).
		Where("status = ?", entity.TruckStatusOnRoute).
		Count(&trucksOnRoute).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count trucks failed"})
		return
	}

	// revenue today, excluding cancelled orders
	var revenueToday struct{ Total *float64 }
	if err := db.Model(&entity.Order{}).
		Select("SUM(total_amount) AS total").
		Where("created_at >= ? AND status <> ?", start, entity.OrderStatusCancelled).
		Scan(&revenueToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sum revenue failed"})
		return
	}
	revenue := 0.0
	if revenueToday.Total != nil {
		revenue = *revenueToday.Total
	}

	// top fish types by kg over the last 30 days
	type topRow struct {
		FishTypeID uint    `json:"fishTypeId"`
		Name       string  `json:"name"`
		TotalKg    float64 `json:"totalKg"`
	}
	var top []topRow
	since := time.Now().AddDate(0, 0, -30)
	if err := db.Table("order_items AS oi").
		Select("oi.fish_type_id, ft.name, SUM(oi.quantity_kg) AS total_kg").
		Joins("JOIN fish_types ft ON ft.id = oi.fish_type_id").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.created_at >= ? AND o.status <> ?", since, entity.OrderStatusCancelled).
		Group("oi.fish_type_id, ft.name").
		Order("total_kg DESC").
		Limit(5).
		Scan(&top).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "top fish types failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":    totalUsers,
		"ordersToday":   ordersToday,
		"pendingOrders": pendingOrders,
		"trucksOnRoute": trucksOnRoute,
		"revenueToday":  revenue,
		"topFishTypes":  top,
	})
}
