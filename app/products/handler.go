package products

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/response"
)

type ProductProvider interface {
	GetProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, updates map[string]any) (*models.Product, error)
	DeleteProduct(id uint) (bool, error)
}

type ProductsHandler struct {
	repo ProductProvider
}

func NewProductsHandler(r ProductProvider) *ProductsHandler {
	return &ProductsHandler{
		repo: r,
	}
}

// CreateProductRequest is the POST /api/products body. Price arrives as a
// decimal string.
type CreateProductRequest struct {
	Name          string   `json:"name"`
	NameBn        string   `json:"namebn"`
	Description   string   `json:"description"`
	DescriptionBn string   `json:"descriptionbn"`
	Price         string   `json:"price"`
	Image         string   `json:"image"`
	Gallery       []string `json:"gallery"`
	Category      string   `json:"category"`
	IsFeatured    bool     `json:"is_featured"`
	IsActive      *bool    `json:"is_active"`
	Stock         int      `json:"stock"`
}

// ToProduct validates the request and maps it onto a model. All violations
// are collected before returning.
func (req *CreateProductRequest) ToProduct() (*models.Product, *models.ValidationError) {
	ve := &models.ValidationError{}

	if strings.TrimSpace(req.Name) == "" {
		ve.Add("name", "Name is required")
	}

	price := decimal.Zero
	if strings.TrimSpace(req.Price) == "" {
		ve.Add("price", "Price is required")
	} else if p, err := decimal.NewFromString(req.Price); err != nil {
		ve.Add("price", "Price must be a decimal number")
	} else if p.IsNegative() {
		ve.Add("price", "Price must not be negative")
	} else {
		price = p
	}

	if req.Stock < 0 {
		ve.Add("stock", "Stock must not be negative")
	}

	if ve.Err() != nil {
		return nil, ve
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &models.Product{
		Name:          req.Name,
		NameBn:        req.NameBn,
		Description:   req.Description,
		DescriptionBn: req.DescriptionBn,
		Price:         price,
		Image:         req.Image,
		Gallery:       models.StringList(req.Gallery),
		Category:      req.Category,
		IsFeatured:    req.IsFeatured,
		IsActive:      isActive,
		Stock:         req.Stock,
	}, nil
}

// UpdateProductRequest is the PUT /api/products/{id} body. Every field is
// optional; only present fields are written.
type UpdateProductRequest struct {
	Name          *string   `json:"name"`
	NameBn        *string   `json:"namebn"`
	Description   *string   `json:"description"`
	DescriptionBn *string   `json:"descriptionbn"`
	Price         *string   `json:"price"`
	Image         *string   `json:"image"`
	Gallery       *[]string `json:"gallery"`
	Category      *string   `json:"category"`
	IsFeatured    *bool     `json:"is_featured"`
	IsActive      *bool     `json:"is_active"`
	Stock         *int      `json:"stock"`
}

// Updates validates the present fields and builds the column map for a
// partial update.
func (req *UpdateProductRequest) Updates() (map[string]any, *models.ValidationError) {
	ve := &models.ValidationError{}
	updates := map[string]any{}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			ve.Add("name", "Name must not be empty")
		} else {
			updates["name"] = *req.Name
		}
	}
	if req.NameBn != nil {
		updates["namebn"] = *req.NameBn
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DescriptionBn != nil {
		updates["descriptionbn"] = *req.DescriptionBn
	}
	if req.Price != nil {
		if p, err := decimal.NewFromString(*req.Price); err != nil {
			ve.Add("price", "Price must be a decimal number")
		} else if p.IsNegative() {
			ve.Add("price", "Price must not be negative")
		} else {
			updates["price"] = p
		}
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Gallery != nil {
		updates["gallery"] = models.StringList(*req.Gallery)
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			ve.Add("stock", "Stock must not be negative")
		} else {
			updates["stock"] = *req.Stock
		}
	}

	if ve.Err() != nil {
		return nil, ve
	}
	return updates, nil
}

func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetProducts()
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	response.JSON(w, http.StatusOK, products)
}

func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Error fetching product: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	response.JSON(w, http.StatusOK, product)
}

func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, ve := req.ToProduct()
	if ve != nil {
		response.ValidationFailed(w, ve)
		return
	}

	if err := h.repo.CreateProduct(product); err != nil {
		log.Printf("Error creating product: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	response.JSON(w, http.StatusCreated, product)
}

func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	updates, ve := req.Updates()
	if ve != nil {
		response.ValidationFailed(w, ve)
		return
	}
	if len(updates) == 0 {
		response.Error(w, http.StatusBadRequest, "No updates provided")
		return
	}

	product, err := h.repo.UpdateProduct(id, updates)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Error updating product: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	response.JSON(w, http.StatusOK, product)
}

func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.repo.DeleteProduct(id)
	if err != nil {
		log.Printf("Error deleting product: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if !deleted {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return uint(id), true
}
