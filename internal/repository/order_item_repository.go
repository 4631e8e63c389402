package repository

import (
	"coffeeshop/internal/models"

	"gorm.io/gorm"
)

// OrderLine is an order item joined with its coffee name, as shown in
// order listings.
type OrderLine struct {
	CoffeeName string         `json:"coffee_name"`
	Size       models.CupSize `json:"size"`
	Quantity   int            `json:"quantity"`
}

// TopSellingCoffee is one row of the sales ranking aggregate.
type TopSellingCoffee struct {
	CoffeeID      string  `json:"coffee_id"`
	CoffeeName    string  `json:"coffee_name"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalSales    float64 `json:"total_sales"`
}

type OrderItemRepository interface {
	Create(orderItem *models.OrderItem) error
	GetByOrderID(orderID uint) ([]*models.OrderItem, error)
	GetLinesByOrderID(orderID uint) ([]OrderLine, error)
	TopSelling(statuses []models.OrderStatus, limit int) ([]TopSellingCoffee, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(orderItem *models.OrderItem) error {
	return r.db.Create(orderItem).Error
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]*models.OrderItem, error) {
	var orderItems []*models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&orderItems).Error
	if err != nil {
		return nil, err
	}
	return orderItems, nil
}

func (r *orderItemRepository) GetLinesByOrderID(orderID uint) ([]OrderLine, error) {
	var lines []OrderLine
	err := r.db.Table("order_items").
		Select("coffees.name AS coffee_name, order_items.size AS size, order_items.quantity AS quantity").
		Joins("JOIN coffees ON order_items.coffee_id = coffees.id").
		Where("order_items.order_id = ?", orderID).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// TopSelling ranks coffees by quantity sold across orders in the given
// statuses. Ties on quantity break on coffee id so the ranking is stable.
func (r *orderItemRepository) TopSelling(statuses []models.OrderStatus, limit int) ([]TopSellingCoffee, error) {
	var rows []TopSellingCoffee
	err := r.db.Table("order_items").
		Select("coffees.id AS coffee_id, coffees.name AS coffee_name, SUM(order_items.quantity) AS total_quantity, SUM(order_items.quantity * coffees.price) AS total_sales").
		Joins("JOIN coffees ON order_items.coffee_id = coffees.id").
		Joins("JOIN orders ON order_items.order_id = orders.id").
		Where("orders.status IN ?", statuses).
		Group("coffees.id, coffees.name").
		Order("total_quantity DESC, coffees.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
