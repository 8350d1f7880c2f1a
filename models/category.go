package models

import "time"

// Category represents a product category. The slug is the stable external
// key and carries a unique index; a duplicate insert fails instead of
// overwriting an existing category. SortOrder drives ascending display order.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	NameBn      string    `gorm:"not null" json:"namebn"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"default:''" json:"description"`
	Icon        string    `gorm:"default:''" json:"icon"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	SortOrder   int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Category) TableName() string {
	return "categories"
}
