package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
	"github.com/GishenCBoraluwa/fisheries-management/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.FishType{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatusHistory{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&entity.FishType{Name: "Yellowfin Tuna", IsActive: true}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := services.NewOrderService(db, repository.NewOrderRepository(db), repository.NewFishRepository(db))
	ctrl := NewOrderController(svc)

	r := gin.New()
	// stand-in for the auth middleware
	r.Use(func(c *gin.Context) { c.Set("userId", uint(1)) })
	r.POST("/orders", ctrl.Create)
	r.GET("/orders/:id", ctrl.Detail)
	return r, db
}

func TestOrderCreate_Endpoint(t *testing.T) {
	r, db := newOrderRouter(t)

	body := `{
		"deliveryDate": "2030-06-15",
		"timeSlot": "06:00-09:00",
		"freshnessHours": 24,
		"latitude": 6.9271,
		"longitude": 79.8612,
		"deliveryAddress": "12 Marine Drive, Colombo 03",
		"orderItems": [{"fishTypeId": 1, "quantityKg": 2, "unitPrice": 500}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		OK   bool `json:"ok"`
		Data struct {
			Order entity.Order       `json:"order"`
			Items []entity.OrderItem `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.OK || res.Data.Order.TotalAmount != 1000 || len(res.Data.Items) != 1 {
		t.Errorf("unexpected payload: %s", w.Body.String())
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 order persisted, got %d", count)
	}
}

func TestOrderCreate_ValidationErrorsReturnedTogether(t *testing.T) {
	r, db := newOrderRouter(t)

	body := `{
		"deliveryDate": "2020-01-01",
		"latitude": 200,
		"longitude": 79.8612,
		"deliveryAddress": "short",
		"orderItems": [{"fishTypeId": 1, "quantityKg": 0, "unitPrice": 500}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var res struct {
		OK               bool     `json:"ok"`
		ValidationErrors []string `json:"validationErrors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.ValidationErrors) < 4 {
		t.Errorf("expected all violations in one response, got %v", res.ValidationErrors)
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no orders persisted, got %d", count)
	}
}

func TestOrderDetail_NotFound(t *testing.T) {
	r, _ := newOrderRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
