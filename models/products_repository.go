package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetProducts returns the whole catalog, newest first.
func (r *ProductsRepository) GetProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetProductByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductsRepository) CreateProduct(product *Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	return r.db.Create(product).Error
}

// UpdateProduct applies a partial update. Only the columns present in
// updates change; updated_at is refreshed here, not by the database.
func (r *ProductsRepository) UpdateProduct(id uint, updates map[string]any) (*Product, error) {
	updates["updated_at"] = time.Now()

	res := r.db.Model(&Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}

	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct reports whether a row was actually removed.
func (r *ProductsRepository) DeleteProduct(id uint) (bool, error) {
	res := r.db.Delete(&Product{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
