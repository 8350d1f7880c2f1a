package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// GetCategories returns all categories in display order.
func (r *CategoriesRepository) GetCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a category. A slug collision surfaces as
// ErrDuplicateSlug; the existing row is never overwritten.
func (r *CategoriesRepository) CreateCategory(category *Category) error {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}
