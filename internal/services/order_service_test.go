package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"coffeeshop/internal/models"
	"coffeeshop/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeShop backs the order, order item, and user repositories with in-memory
// maps so reporting behavior can be exercised without a database.
type fakeShop struct {
	orders  map[uint]models.Order
	items   []models.OrderItem
	users   map[uint]models.User
	coffees map[string]models.Coffee
	failAll error
}

func newFakeShop() *fakeShop {
	return &fakeShop{
		orders:  map[uint]models.Order{},
		users:   map[uint]models.User{},
		coffees: map[string]models.Coffee{},
	}
}

// OrderRepository

func (f *fakeShop) GetAll() ([]models.Order, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var orders []models.Order
	for _, o := range f.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (f *fakeShop) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var orders []models.Order
	for _, o := range f.orders {
		if o.Status == status {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (f *fakeShop) GetByID(id uint) (*models.Order, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	if o, ok := f.orders[id]; ok {
		return &o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShop) Count() (int64, error) {
	if f.failAll != nil {
		return 0, f.failAll
	}
	return int64(len(f.orders)), nil
}

func (f *fakeShop) DeleteWithItems(id uint) error {
	if f.failAll != nil {
		return f.failAll
	}
	delete(f.orders, id)
	kept := f.items[:0]
	for _, item := range f.items {
		if item.OrderID != id {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

// OrderItemRepository

func (f *fakeShop) Create(item *models.OrderItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeShop) GetByOrderID(orderID uint) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	for i := range f.items {
		if f.items[i].OrderID == orderID {
			items = append(items, &f.items[i])
		}
	}
	return items, nil
}

func (f *fakeShop) GetLinesByOrderID(orderID uint) ([]repository.OrderLine, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var lines []repository.OrderLine
	for _, item := range f.items {
		if item.OrderID != orderID {
			continue
		}
		coffee, ok := f.coffees[item.CoffeeID]
		if !ok {
			continue
		}
		lines = append(lines, repository.OrderLine{
			CoffeeName: coffee.Name,
			Size:       item.Size,
			Quantity:   item.Quantity,
		})
	}
	return lines, nil
}

func (f *fakeShop) TopSelling(statuses []models.OrderStatus, limit int) ([]repository.TopSellingCoffee, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	qualifying := map[models.OrderStatus]bool{}
	for _, s := range statuses {
		qualifying[s] = true
	}

	byCoffee := map[string]*repository.TopSellingCoffee{}
	for _, item := range f.items {
		order, ok := f.orders[item.OrderID]
		if !ok || !qualifying[order.Status] {
			continue
		}
		coffee, ok := f.coffees[item.CoffeeID]
		if !ok {
			continue
		}
		row, ok := byCoffee[coffee.ID]
		if !ok {
			row = &repository.TopSellingCoffee{CoffeeID: coffee.ID, CoffeeName: coffee.Name}
			byCoffee[coffee.ID] = row
		}
		row.TotalQuantity += float64(item.Quantity)
		row.TotalSales += float64(item.Quantity) * coffee.Price
	}

	var rows []repository.TopSellingCoffee
	for _, row := range byCoffee {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalQuantity != rows[j].TotalQuantity {
			return rows[i].TotalQuantity > rows[j].TotalQuantity
		}
		return rows[i].CoffeeID < rows[j].CoffeeID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// UserRepository

type fakeUserRepo struct {
	shop *fakeShop
}

func (f *fakeUserRepo) Create(user *models.User) error { return nil }

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if f.shop.failAll != nil {
		return nil, f.shop.failAll
	}
	if u, ok := f.shop.users[id]; ok {
		return &u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByFirebaseUID(uid string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(user *models.User) error { return nil }

func (f *fakeUserRepo) Delete(id uint) error { return nil }

func newTestService(shop *fakeShop, cache ReportCache) OrderService {
	return NewOrderService(shop, shop, &fakeUserRepo{shop: shop}, cache, time.Minute)
}

func seedLatteScenario(shop *fakeShop) {
	shop.coffees["latte"] = models.Coffee{ID: "latte", Name: "Latte", Price: 4.00, Status: models.CoffeeActive}
	shop.users[1] = models.User{ID: 1, FirebaseUID: "fb-1", Name: "Alice"}
	shop.orders[1] = models.Order{ID: 1, UserID: 1, StoreID: 1, TotalAmount: 8.00, OrderType: models.OrderPickup, Status: models.OrderCompleted}
	shop.items = append(shop.items, models.OrderItem{ID: 1, OrderID: 1, CoffeeID: "latte", Size: models.SizeMedium, Quantity: 2})
}

func TestListOrders_OneReportPerOrder(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)
	shop.coffees["espresso"] = models.Coffee{ID: "espresso", Name: "Espresso", Price: 2.50, Status: models.CoffeeActive}
	shop.orders[2] = models.Order{ID: 2, UserID: 99, StoreID: 1, TotalAmount: 5.00, OrderType: models.OrderDelivery, Status: models.OrderPending}
	shop.items = append(shop.items,
		models.OrderItem{ID: 2, OrderID: 2, CoffeeID: "espresso", Size: models.SizeSmall, Quantity: 1},
		models.OrderItem{ID: 3, OrderID: 2, CoffeeID: "latte", Size: models.SizeLarge, Quantity: 1},
	)

	svc := newTestService(shop, nil)
	reports, err := svc.ListOrders("")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	require.Equal(t, uint(1), reports[0].OrderID)
	require.Equal(t, "Alice", reports[0].UserName)
	require.Len(t, reports[0].Items, 1)
	require.Equal(t, "Latte", reports[0].Items[0].CoffeeName)
	require.Equal(t, 2, reports[0].Items[0].Quantity)

	// User 99 does not exist; the report falls back to the sentinel name.
	require.Equal(t, "Unknown", reports[1].UserName)
	require.Len(t, reports[1].Items, 2)
}

func TestListOrders_EmptyIsNotFound(t *testing.T) {
	svc := newTestService(newFakeShop(), nil)

	_, err := svc.ListOrders("")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "no orders found", notFound.Detail)
}

func TestListOrders_StatusFilterNoMatch(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)

	svc := newTestService(shop, nil)
	_, err := svc.ListOrders("pending")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Contains(t, notFound.Detail, "pending")
}

func TestListOrders_StatusFilterMatch(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)

	svc := newTestService(shop, nil)
	reports, err := svc.ListOrders("completed")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, models.OrderCompleted, reports[0].Status)
}

func TestListOrders_UnknownStatusRejected(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)

	svc := newTestService(shop, nil)
	_, err := svc.ListOrders("shipped")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Detail, "shipped")
}

func TestListOrders_PersistenceFailureIsInternal(t *testing.T) {
	shop := newFakeShop()
	shop.failAll = errors.New("connection refused")

	svc := newTestService(shop, nil)
	_, err := svc.ListOrders("")
	var internalErr *InternalError
	require.ErrorAs(t, err, &internalErr)
	require.Equal(t, "server error", internalErr.Error())
	require.ErrorContains(t, internalErr.Unwrap(), "connection refused")
}

func TestCountOrders_ZeroIsValid(t *testing.T) {
	svc := newTestService(newFakeShop(), nil)

	count, err := svc.CountOrders()
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestDeleteOrder_NotFoundLeavesRowsUntouched(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)

	svc := newTestService(shop, nil)
	_, err := svc.DeleteOrder(42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Len(t, shop.orders, 1)
	require.Len(t, shop.items, 1)
}

func TestDeleteOrder_RemovesOrderAndItems(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)
	shop.orders[2] = models.Order{ID: 2, UserID: 1, StoreID: 1, TotalAmount: 4.00, Status: models.OrderPending}
	shop.items = append(shop.items, models.OrderItem{ID: 2, OrderID: 2, CoffeeID: "latte", Size: models.SizeSmall, Quantity: 1})

	svc := newTestService(shop, nil)
	message, err := svc.DeleteOrder(1)
	require.NoError(t, err)
	require.Contains(t, message, "deleted")

	require.Len(t, shop.orders, 1)
	require.Contains(t, shop.orders, uint(2))
	for _, item := range shop.items {
		require.NotEqual(t, uint(1), item.OrderID)
	}
}

func TestTopSellingCoffees_LatteScenario(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)

	svc := newTestService(shop, nil)
	rows, err := svc.TopSellingCoffees(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Latte", rows[0].CoffeeName)
	require.Equal(t, float64(2), rows[0].TotalQuantity)
	require.Equal(t, 8.00, rows[0].TotalSales)
}

func TestTopSellingCoffees_SortedDescendingAndLimited(t *testing.T) {
	shop := newFakeShop()
	shop.users[1] = models.User{ID: 1, Name: "Alice"}
	shop.coffees["latte"] = models.Coffee{ID: "latte", Name: "Latte", Price: 4.00}
	shop.coffees["espresso"] = models.Coffee{ID: "espresso", Name: "Espresso", Price: 2.50}
	shop.coffees["mocha"] = models.Coffee{ID: "mocha", Name: "Mocha", Price: 4.50}
	shop.orders[1] = models.Order{ID: 1, UserID: 1, Status: models.OrderCompleted}
	shop.orders[2] = models.Order{ID: 2, UserID: 1, Status: models.OrderReady}
	shop.items = append(shop.items,
		models.OrderItem{ID: 1, OrderID: 1, CoffeeID: "latte", Quantity: 5},
		models.OrderItem{ID: 2, OrderID: 1, CoffeeID: "espresso", Quantity: 2},
		models.OrderItem{ID: 3, OrderID: 2, CoffeeID: "mocha", Quantity: 3},
	)

	svc := newTestService(shop, nil)

	rows, err := svc.TopSellingCoffees(10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		require.GreaterOrEqual(t, rows[i-1].TotalQuantity, rows[i].TotalQuantity)
	}

	rows, err = svc.TopSellingCoffees(2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Latte", rows[0].CoffeeName)
	require.Equal(t, "Mocha", rows[1].CoffeeName)
}

func TestTopSellingCoffees_OnlyCompletedAndReadyCount(t *testing.T) {
	shop := newFakeShop()
	shop.coffees["latte"] = models.Coffee{ID: "latte", Name: "Latte", Price: 4.00}
	shop.orders[1] = models.Order{ID: 1, UserID: 1, Status: models.OrderPending}
	shop.orders[2] = models.Order{ID: 2, UserID: 1, Status: models.OrderCancelled}
	shop.items = append(shop.items,
		models.OrderItem{ID: 1, OrderID: 1, CoffeeID: "latte", Quantity: 4},
		models.OrderItem{ID: 2, OrderID: 2, CoffeeID: "latte", Quantity: 1},
	)

	svc := newTestService(shop, nil)
	_, err := svc.TopSellingCoffees(10)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "no sales data found", notFound.Detail)
}

// fakeCache records report cache traffic.
type fakeCache struct {
	count       *int64
	topSelling  map[int][]repository.TopSellingCoffee
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{topSelling: map[int][]repository.TopSellingCoffee{}}
}

func (f *fakeCache) GetOrderCount() (int64, error) {
	if f.count == nil {
		return 0, errors.New("cache miss")
	}
	return *f.count, nil
}

func (f *fakeCache) SetOrderCount(count int64, _ time.Duration) error {
	f.count = &count
	return nil
}

func (f *fakeCache) GetTopSelling(limit int, dest interface{}) error {
	rows, ok := f.topSelling[limit]
	if !ok {
		return errors.New("cache miss")
	}
	*dest.(*[]repository.TopSellingCoffee) = rows
	return nil
}

func (f *fakeCache) SetTopSelling(limit int, report interface{}, _ time.Duration) error {
	f.topSelling[limit] = report.([]repository.TopSellingCoffee)
	return nil
}

func (f *fakeCache) InvalidateReports() error {
	f.count = nil
	f.topSelling = map[int][]repository.TopSellingCoffee{}
	f.invalidated++
	return nil
}

func TestCountOrders_UsesCache(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)
	cache := newFakeCache()

	svc := newTestService(shop, cache)
	count, err := svc.CountOrders()
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.NotNil(t, cache.count)

	// A cached count is served even when the store fails.
	shop.failAll = errors.New("connection refused")
	count, err = svc.CountOrders()
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestDeleteOrder_InvalidatesReportCache(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)
	cache := newFakeCache()

	svc := newTestService(shop, cache)
	_, err := svc.CountOrders()
	require.NoError(t, err)

	_, err = svc.DeleteOrder(1)
	require.NoError(t, err)
	require.Equal(t, 1, cache.invalidated)
	require.Nil(t, cache.count)
}

func TestTopSellingCoffees_DefaultLimit(t *testing.T) {
	shop := newFakeShop()
	seedLatteScenario(shop)

	svc := newTestService(shop, nil)
	rows, err := svc.TopSellingCoffees(0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
