package categories

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/response"
)

type CategoryProvider interface {
	GetCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
}

type CategoriesHandler struct {
	repo CategoryProvider
}

func NewCategoriesHandler(r CategoryProvider) *CategoriesHandler {
	return &CategoriesHandler{
		repo: r,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	NameBn      string `json:"namebn"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

func (req *CreateCategoryRequest) ToCategory() (*models.Category, *models.ValidationError) {
	ve := &models.ValidationError{}

	if strings.TrimSpace(req.Name) == "" {
		ve.Add("name", "Name is required")
	}
	if strings.TrimSpace(req.NameBn) == "" {
		ve.Add("namebn", "Bengali name is required")
	}
	if strings.TrimSpace(req.Slug) == "" {
		ve.Add("slug", "Slug is required")
	}
	if ve.Err() != nil {
		return nil, ve
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &models.Category{
		Name:        req.Name,
		NameBn:      req.NameBn,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    isActive,
		SortOrder:   req.SortOrder,
	}, nil
}

func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetCategories()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	response.JSON(w, http.StatusOK, categories)
}

func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	category, ve := req.ToCategory()
	if ve != nil {
		response.ValidationFailed(w, ve)
		return
	}

	if err := h.repo.CreateCategory(category); err != nil {
		if errors.Is(err, models.ErrDuplicateSlug) {
			response.Error(w, http.StatusConflict, "Slug already exists")
			return
		}
		log.Printf("Error creating category: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	response.JSON(w, http.StatusCreated, category)
}
