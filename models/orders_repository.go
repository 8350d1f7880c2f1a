package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// orderIDMaxAttempts bounds the retry loop for order-id collisions. A single
// retry has never been observed in practice; the bound exists so a broken
// clock cannot spin forever.
const orderIDMaxAttempts = 5

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

// CreateOrder persists a new order. The external order id is generated here,
// both statuses are forced to pending regardless of the incoming value, and
// the item snapshot is stored as-is. If the generated id collides with an
// existing row the insert is retried with a fresh id.
func (r *OrdersRepository) CreateOrder(order *Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.OrderStatus = OrderStatusPending
	order.PaymentStatus = PaymentStatusPending

	for attempt := 0; attempt < orderIDMaxAttempts; attempt++ {
		order.OrderID = GenerateOrderID()

		err := r.db.Create(order).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("could not allocate a unique order id after %d attempts", orderIDMaxAttempts)
}

// GetOrders returns all orders, most recent first.
func (r *OrdersRepository) GetOrders() ([]Order, error) {
	var orders []Order
	if err := r.db.
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByOrderID looks an order up by its external identifier.
func (r *OrdersRepository) GetOrderByOrderID(orderID string) (*Order, error) {
	var order Order
	if err := r.db.
		Where("order_id = ?", orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves the fulfilment axis to status. Any member of the
// enumeration may follow any other; only membership is checked.
func (r *OrdersRepository) UpdateOrderStatus(id uint, status OrderStatus) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	return r.updateStatusColumn(id, "order_status", string(status))
}

// UpdatePaymentStatus moves the payment axis to status, independently of the
// fulfilment axis.
func (r *OrdersRepository) UpdatePaymentStatus(id uint, status PaymentStatus) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}
	return r.updateStatusColumn(id, "payment_status", string(status))
}

func (r *OrdersRepository) updateStatusColumn(id uint, column, value string) (*Order, error) {
	res := r.db.
		Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			column:       value,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}

	var order Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
