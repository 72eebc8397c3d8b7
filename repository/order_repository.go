package repository

import (
	"strings"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (main CRUD) ----------------

// POST /orders → create inside the caller's transaction
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (customer) → own orders only
type OrderSummary struct {
	ID           uint      `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	DeliveryDate time.Time `json:"deliveryDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, total_amount, status, delivery_date, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /admin/orders → all orders with customer name, optional status filter
type AdminOrderSummary struct {
	ID           uint      `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	UserID       uint      `json:"userId"`
	CustomerName string    `json:"customerName"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	DeliveryDate time.Time `json:"deliveryDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(status string, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Table("orders AS o").Where("o.deleted_at IS NULL")
	if status != "" {
		dbCount = dbCount.Where("o.status = ?", status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// join users for the customer name
	var rows []struct {
		ID           uint
		OrderNumber  string
		UserID       uint
		TotalAmount  float64
		Status       string
		DeliveryDate time.Time
		CreatedAt    time.Time
		FirstName    string
		LastName     string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.order_number, o.user_id, o.total_amount, o.status, o.delivery_date, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL")
	if status != "" {
		db = db.Where("o.status = ?", status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]AdminOrderSummary, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.FirstName + " " + row.LastName)
		out = append(out, AdminOrderSummary{
			ID:           row.ID,
			OrderNumber:  row.OrderNumber,
			UserID:       row.UserID,
			CustomerName: name,
			TotalAmount:  row.TotalAmount,
			Status:       row.Status,
			DeliveryDate: row.DeliveryDate,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, total, nil
}

// PUT /orders/:id/status → compare-and-swap on the current status
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) AssignTruck(tx *gorm.DB, orderID, truckID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("truck_id", truckID).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, quantity_kg, unit_price, subtotal, fish_type_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- Status history ----------------

func (r *OrderRepository) CreateStatusHistory(tx *gorm.DB, h *entity.OrderStatusHistory) error {
	return tx.Create(h).Error
}

func (r *OrderRepository) GetStatusHistory(orderID uint) ([]entity.OrderStatusHistory, error) {
	var out []entity.OrderStatusHistory
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&out).Error
	return out, err
}
