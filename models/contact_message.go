package models

import "time"

// ContactMessage is a storefront contact-form submission. Append-mostly;
// IsRead exists for the admin UI.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *ContactMessage) TableName() string {
	return "contact_messages"
}
