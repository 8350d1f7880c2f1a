package models

import "time"

// CustomDesign is a customer-built design attached to a product within a
// session, stored as an opaque JSON payload.
type CustomDesign struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionID  string    `gorm:"not null;index" json:"sessionId"`
	ProductID  uint      `json:"productId"`
	DesignData JSON      `gorm:"type:jsonb;not null" json:"designData"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (d *CustomDesign) TableName() string {
	return "custom_designs"
}
