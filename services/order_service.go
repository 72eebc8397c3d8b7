package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	FishRepo *repository.FishRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, fishRepo *repository.FishRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, FishRepo: fishRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	FishTypeID uint    `json:"fishTypeId"`
	QuantityKg float64 `json:"quantityKg"`
	UnitPrice  float64 `json:"unitPrice"`
}

type CreateOrderReq struct {
	DeliveryDate    string        `json:"deliveryDate"` // "2006-01-02"
	TimeSlot        string        `json:"timeSlot"`
	FreshnessHours  int           `json:"freshnessHours"`
	Latitude        float64       `json:"latitude"`
	Longitude       float64       `json:"longitude"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Items           []OrderItemIn `json:"orderItems"`
}

type CreateOrderRes struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

// ValidationError carries every violation found in the request, not just the
// first one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

const (
	minAddressLen = 10
	maxAddressLen = 500
	maxItems      = 10
	maxQuantityKg = 1000.0
)

func (s *OrderService) validate(req *CreateOrderReq) (time.Time, []string) {
	var violations []string

	deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
	if err != nil {
		violations = append(violations, "deliveryDate must be formatted as YYYY-MM-DD")
	} else {
		today := time.Now().Truncate(24 * time.Hour)
		if deliveryDate.Before(today) {
			violations = append(violations, "deliveryDate must not be in the past")
		}
	}

	if req.Latitude < -90 || req.Latitude > 90 {
		violations = append(violations, "latitude must be between -90 and 90")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		violations = append(violations, "longitude must be between -180 and 180")
	}
	if l := len(strings.TrimSpace(req.DeliveryAddress)); l < minAddressLen || l > maxAddressLen {
		violations = append(violations, "deliveryAddress must be 10-500 characters")
	}

	if len(req.Items) < 1 || len(req.Items) > maxItems {
		violations = append(violations, "orderItems must contain 1-10 items")
	}
	for i, it := range req.Items {
		if it.FishTypeID == 0 {
			violations = append(violations, fmt.Sprintf("orderItems[%d].fishTypeId must be positive", i))
		}
		if it.QuantityKg <= 0 || it.QuantityKg > maxQuantityKg {
			violations = append(violations, fmt.Sprintf("orderItems[%d].quantityKg must be between 0 and 1000", i))
		}
		if it.UnitPrice <= 0 {
			violations = append(violations, fmt.Sprintf("orderItems[%d].unitPrice must be positive", i))
		}
	}

	return deliveryDate, violations
}

// ----- Create -----

// Create validates the request, derives the total, and persists the order,
// its items and the initial status-history row in one transaction. Nothing is
// written if any part fails.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	deliveryDate, violations := s.validate(req)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	// dedupe: the same fish type may appear on several lines
	seen := make(map[uint]bool, len(req.Items))
	fishTypeIDs := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		if !seen[it.FishTypeID] {
			seen[it.FishTypeID] = true
			fishTypeIDs = append(fishTypeIDs, it.FishTypeID)
		}
	}
	ok, err := s.FishRepo.AllActive(fishTypeIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("fish type not found")
	}

	var total float64
	for _, it := range req.Items {
		total += it.QuantityKg * it.UnitPrice
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			OrderNumber:     "ORD-" + uuid.NewString(),
			UserID:          userID,
			DeliveryDate:    deliveryDate,
			TimeSlot:        req.TimeSlot,
			FreshnessHours:  req.FreshnessHours,
			Latitude:        req.Latitude,
			Longitude:       req.Longitude,
			DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
			TotalAmount:     total,
			Status:          entity.OrderStatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				FishTypeID: it.FishTypeID,
				QuantityKg: it.QuantityKg,
				UnitPrice:  it.UnitPrice,
				Subtotal:   it.QuantityKg * it.UnitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			items = append(items, oi)
		}

		history := entity.OrderStatusHistory{
			OrderID: order.ID,
			Status:  entity.OrderStatusPending,
			Note:    "Order created",
		}
		if err := s.Repo.CreateStatusHistory(tx, &history); err != nil {
			return err
		}

		out = CreateOrderRes{Order: order, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order   entity.Order                `json:"order"`
	Items   []entity.OrderItem          `json:"items"`
	History []entity.OrderStatusHistory `json:"history"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.detail(o)
}

// Detail is the unscoped variant for admin screens.
func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	return s.detail(o)
}

func (s *OrderService) detail(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.Repo.GetStatusHistory(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items, History: history}, nil
}

// ----- Status transitions -----

// Legal moves; anything else is rejected.
var statusTransitions = map[string][]string{
	entity.OrderStatusPending:    {entity.OrderStatusScheduled, entity.OrderStatusCancelled},
	entity.OrderStatusScheduled:  {entity.OrderStatusInProgress, entity.OrderStatusCancelled},
	entity.OrderStatusInProgress: {entity.OrderStatusDelivered, entity.OrderStatusCancelled},
	entity.OrderStatusDelivered:  {entity.OrderStatusCompleted},
}

func canTransition(from, to string) bool {
	for _, t := range statusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves an order along the lifecycle and appends the change to
// the history log, atomically.
func (s *OrderService) UpdateStatus(orderID uint, to, note string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if !canTransition(o.Status, to) {
		return fmt.Errorf("cannot change status from %s to %s", o.Status, to)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Repo.UpdateStatusFromTo(tx, orderID, o.Status, to)
		if err != nil {
			return err
		}
		if !moved {
			return errors.New("order status changed concurrently")
		}
		return s.Repo.CreateStatusHistory(tx, &entity.OrderStatusHistory{
			OrderID: orderID,
			Status:  to,
			Note:    note,
		})
	})
}

// Cancel is the customer-facing transition; only pending or scheduled orders
// can be cancelled.
func (s *OrderService) Cancel(userID, orderID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return err
	}
	if o.Status != entity.OrderStatusPending && o.Status != entity.OrderStatusScheduled {
		return fmt.Errorf("cannot cancel an order in status %s", o.Status)
	}
	return s.UpdateStatus(orderID, entity.OrderStatusCancelled, "Cancelled by customer")
}
