package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks fulfilment progress. It advances independently from
// PaymentStatus; no transition graph is enforced, only membership in the
// enumeration.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks the payment axis of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod is the customer's chosen payment channel. It is a stored
// enum only; no gateway integration happens here.
type PaymentMethod string

const (
	PaymentMethodCOD   PaymentMethod = "cod"
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
	PaymentMethodUpay  PaymentMethod = "upay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBkash, PaymentMethodNagad, PaymentMethodUpay:
		return true
	}
	return false
}

// OrderItem is a point-in-time snapshot of one ordered line: the product's
// id, name and unit price as submitted at checkout. It is not a live
// reference; later catalog changes never touch it.
type OrderItem struct {
	ProductID    uint            `json:"productId"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Name         string          `json:"name"`
	CustomDesign JSON            `json:"customDesign,omitempty"`
}

// Order is a persisted order. OrderID is the externally visible identifier
// (distinct from the numeric primary key) and carries a unique index. Items
// and Total are stored exactly as asserted by the caller at creation time.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderID         string          `gorm:"size:64;not null;uniqueIndex" json:"orderId"`
	CustomerName    string          `gorm:"not null" json:"customerName"`
	CustomerPhone   string          `gorm:"not null" json:"customerPhone"`
	CustomerAddress string          `gorm:"not null" json:"customerAddress"`
	Items           OrderItemList   `gorm:"type:jsonb;not null" json:"items"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	PaymentMethod   PaymentMethod   `gorm:"size:20;not null" json:"paymentMethod"`
	OrderStatus     OrderStatus     `gorm:"size:20;default:pending" json:"orderStatus"`
	PaymentStatus   PaymentStatus   `gorm:"size:20;default:pending" json:"paymentStatus"`
	District        string          `json:"district"`
	Thana           string          `json:"thana"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (o *Order) TableName() string {
	return "orders"
}
