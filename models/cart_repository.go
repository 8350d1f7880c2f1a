package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		db: db,
	}
}

// GetCartItems returns every line of a session's cart with the live product
// joined in. Lines whose product was deleted keep a nil Product rather than
// disappearing.
func (r *CartRepository) GetCartItems(sessionID string) ([]CartItem, error) {
	var items []CartItem
	if err := r.db.
		Preload("Product").
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart inserts a line for (sessionID, productID) or, when one already
// exists, adds quantity to it. The merge runs as a single conditional upsert
// on the composite unique index, so two concurrent adds for the same key
// cannot lose an update.
func (r *CartRepository) AddToCart(sessionID string, productID uint, quantity int) (*CartItem, error) {
	now := time.Now()
	item := CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.db.
		Omit("Product").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": now,
			}),
		}).
		Create(&item).Error
	if err != nil {
		return nil, err
	}

	return r.getItem(sessionID, productID)
}

// UpdateQuantity sets the line's quantity to an absolute value.
func (r *CartRepository) UpdateQuantity(sessionID string, productID uint, quantity int) (*CartItem, error) {
	res := r.db.
		Model(&CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Updates(map[string]any{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrCartItemNotFound
	}

	return r.getItem(sessionID, productID)
}

// RemoveFromCart reports whether a line was actually removed.
func (r *CartRepository) RemoveFromCart(sessionID string, productID uint) (bool, error) {
	res := r.db.
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ClearCart empties the session's cart. Clearing an already-empty cart is a
// no-op success.
func (r *CartRepository) ClearCart(sessionID string) error {
	return r.db.
		Where("session_id = ?", sessionID).
		Delete(&CartItem{}).Error
}

func (r *CartRepository) getItem(sessionID string, productID uint) (*CartItem, error) {
	var item CartItem
	if err := r.db.
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
