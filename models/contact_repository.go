package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) CreateContactMessage(message *ContactMessage) error {
	message.CreatedAt = time.Now()
	return r.db.Create(message).Error
}

func (r *ContactRepository) GetContactMessages() ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := r.db.
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
