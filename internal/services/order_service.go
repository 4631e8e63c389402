package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"coffeeshop/internal/models"
	"coffeeshop/internal/repository"

	"gorm.io/gorm"
)

// DefaultTopSellingLimit caps the sales ranking when the caller does not ask
// for a specific length.
const DefaultTopSellingLimit = 10

// unknownUserName stands in for orders whose user record no longer exists.
const unknownUserName = "Unknown"

// OrderService is the order reporting engine: it reads persisted orders and
// shapes them into nested report records, counts them, aggregates sales, and
// deletes single orders. Order status transitions are written by the external
// ordering workflow and are not validated here.
type OrderService interface {
	ListOrders(status string) ([]OrderReport, error)
	CountOrders() (int64, error)
	DeleteOrder(id uint) (string, error)
	TopSellingCoffees(limit int) ([]repository.TopSellingCoffee, error)
}

// OrderReport is one order with its lines and resolved names. The same field
// names are used for filtered and unfiltered listings.
type OrderReport struct {
	OrderID     uint                   `json:"order_id"`
	UserID      uint                   `json:"user_id"`
	UserName    string                 `json:"user_name"`
	StoreID     uint                   `json:"store_id"`
	TotalAmount float64                `json:"total_amount"`
	OrderType   models.OrderType       `json:"order_type"`
	Status      models.OrderStatus     `json:"status"`
	Items       []repository.OrderLine `json:"items"`
}

// ReportCache is the slice of the redis client the reporting engine uses.
// A nil cache disables caching entirely.
type ReportCache interface {
	GetOrderCount() (int64, error)
	SetOrderCount(count int64, ttl time.Duration) error
	GetTopSelling(limit int, dest interface{}) error
	SetTopSelling(limit int, report interface{}, ttl time.Duration) error
	InvalidateReports() error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	userRepo      repository.UserRepository
	cache         ReportCache
	cacheTTL      time.Duration
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	userRepo repository.UserRepository,
	cache ReportCache,
	cacheTTL time.Duration,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		userRepo:      userRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// ListOrders returns every order shaped into an OrderReport. A non-empty
// status restricts the listing to that status; unknown status values are
// rejected before touching the database.
func (s *orderService) ListOrders(status string) ([]OrderReport, error) {
	var (
		orders []models.Order
		err    error
	)

	if status == "" {
		orders, err = s.orderRepo.GetAll()
	} else {
		filter := models.OrderStatus(status)
		if !filter.Valid() {
			return nil, validationf("invalid order status %q", status)
		}
		orders, err = s.orderRepo.GetByStatus(filter)
	}
	if err != nil {
		return nil, internal("fetch orders", err)
	}

	if len(orders) == 0 {
		if status == "" {
			return nil, notFoundf("no orders found")
		}
		return nil, notFoundf("no %s orders found", status)
	}

	reports := make([]OrderReport, 0, len(orders))
	for _, order := range orders {
		userName, err := s.resolveUserName(order.UserID)
		if err != nil {
			return nil, err
		}

		lines, err := s.orderItemRepo.GetLinesByOrderID(order.ID)
		if err != nil {
			return nil, internal(fmt.Sprintf("fetch items for order %d", order.ID), err)
		}
		if lines == nil {
			lines = []repository.OrderLine{}
		}

		reports = append(reports, OrderReport{
			OrderID:     order.ID,
			UserID:      order.UserID,
			UserName:    userName,
			StoreID:     order.StoreID,
			TotalAmount: order.TotalAmount,
			OrderType:   order.OrderType,
			Status:      order.Status,
			Items:       lines,
		})
	}

	return reports, nil
}

// resolveUserName tolerates a missing user row; any other lookup failure is
// a real error.
func (s *orderService) resolveUserName(userID uint) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unknownUserName, nil
		}
		return "", internal(fmt.Sprintf("fetch user %d", userID), err)
	}
	return user.Name, nil
}

// CountOrders returns the total number of orders. Zero is a valid count.
func (s *orderService) CountOrders() (int64, error) {
	if s.cache != nil {
		if count, err := s.cache.GetOrderCount(); err == nil {
			return count, nil
		}
	}

	count, err := s.orderRepo.Count()
	if err != nil {
		return 0, internal("count orders", err)
	}

	if s.cache != nil {
		if err := s.cache.SetOrderCount(count, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache order count: %v", err)
		}
	}

	return count, nil
}

// DeleteOrder removes the order and its items as one atomic unit.
func (s *orderService) DeleteOrder(id uint) (string, error) {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundf("no order found for this id")
		}
		return "", internal(fmt.Sprintf("fetch order %d", id), err)
	}

	if err := s.orderRepo.DeleteWithItems(id); err != nil {
		return "", internal(fmt.Sprintf("delete order %d", id), err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateReports(); err != nil {
			log.Printf("Warning: failed to invalidate report cache: %v", err)
		}
	}

	return fmt.Sprintf("Order %d has been deleted successfully", id), nil
}

// TopSellingCoffees ranks coffees by quantity sold across completed and
// ready orders, highest first.
func (s *orderService) TopSellingCoffees(limit int) ([]repository.TopSellingCoffee, error) {
	if limit <= 0 {
		limit = DefaultTopSellingLimit
	}

	if s.cache != nil {
		var cached []repository.TopSellingCoffee
		if err := s.cache.GetTopSelling(limit, &cached); err == nil {
			return cached, nil
		}
	}

	statuses := []models.OrderStatus{models.OrderCompleted, models.OrderReady}
	rows, err := s.orderItemRepo.TopSelling(statuses, limit)
	if err != nil {
		return nil, internal("aggregate top selling coffees", err)
	}

	if len(rows) == 0 {
		return nil, notFoundf("no sales data found")
	}

	if s.cache != nil {
		if err := s.cache.SetTopSelling(limit, rows, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache top selling report: %v", err)
		}
	}

	return rows, nil
}
