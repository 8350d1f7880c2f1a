package models

import (
	"time"

	"gorm.io/gorm"
)

type DesignsRepository struct {
	db *gorm.DB
}

func NewDesignsRepository(db *gorm.DB) *DesignsRepository {
	return &DesignsRepository{
		db: db,
	}
}

func (r *DesignsRepository) CreateCustomDesign(design *CustomDesign) error {
	now := time.Now()
	design.CreatedAt = now
	design.UpdatedAt = now
	return r.db.Create(design).Error
}

func (r *DesignsRepository) GetCustomDesignsBySession(sessionID string) ([]CustomDesign, error) {
	var designs []CustomDesign
	if err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&designs).Error; err != nil {
		return nil, err
	}
	return designs, nil
}
