package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a session-scoped cart. The (SessionID, ProductID)
// pair carries a composite unique index: adding the same product to the same
// session again merges quantities through an upsert instead of creating a
// second row.
//
// Price is a placeholder at add time; the cart listing joins the live product
// so the storefront always shows current price and availability.
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SessionID string          `gorm:"size:255;not null;uniqueIndex:idx_cart_session_product" json:"sessionId"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"productId"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	// Product is the live catalog row, loaded for cart listings. Nil when the
	// referenced product has been deleted since the item was added.
	Product *Product `gorm:"foreignKey:ProductID" json:"product"`
}

func (i *CartItem) TableName() string {
	return "cart_items"
}
