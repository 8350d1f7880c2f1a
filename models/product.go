package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product. The price is kept as a fixed-point
// decimal and serializes as a decimal string, matching the storefront
// contract. Category holds a category slug as a free-form reference; there is
// deliberately no foreign key.
type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	NameBn        string          `gorm:"size:255" json:"namebn"`
	Description   string          `gorm:"type:text" json:"description"`
	DescriptionBn string          `gorm:"type:text" json:"descriptionbn"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Image         string          `gorm:"size:500" json:"image"`
	Gallery       StringList      `gorm:"type:jsonb" json:"gallery"`
	Category      string          `gorm:"size:100" json:"category"`
	IsFeatured    bool            `gorm:"default:false" json:"is_featured"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	Stock         int             `gorm:"default:0" json:"stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Product) TableName() string {
	return "products"
}
