package cart

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/response"
)

type CartProvider interface {
	GetCartItems(sessionID string) ([]models.CartItem, error)
	AddToCart(sessionID string, productID uint, quantity int) (*models.CartItem, error)
	UpdateQuantity(sessionID string, productID uint, quantity int) (*models.CartItem, error)
	RemoveFromCart(sessionID string, productID uint) (bool, error)
	ClearCart(sessionID string) error
}

type CartHandler struct {
	repo CartProvider
}

func NewCartHandler(r CartProvider) *CartHandler {
	return &CartHandler{
		repo: r,
	}
}

// itemRequest covers the add/update/remove bodies. Quantity is a pointer so
// an omitted quantity on add can default to 1 while an explicit 0 is still
// rejected.
type itemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  *int `json:"quantity"`
}

func (h *CartHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	items, err := h.repo.GetCartItems(sessionID)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CartHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ProductID == 0 {
		response.Error(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		response.Error(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	}

	item, err := h.repo.AddToCart(sessionID, req.ProductID, quantity)
	if err != nil {
		log.Printf("Error adding to cart: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *CartHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ProductID == 0 || req.Quantity == nil {
		response.Error(w, http.StatusBadRequest, "Product ID and quantity are required")
		return
	}
	if *req.Quantity < 1 {
		response.Error(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	}

	item, err := h.repo.UpdateQuantity(sessionID, req.ProductID, *req.Quantity)
	if err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			response.Error(w, http.StatusNotFound, "Cart item not found")
			return
		}
		log.Printf("Error updating cart: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *CartHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ProductID == 0 {
		response.Error(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	removed, err := h.repo.RemoveFromCart(sessionID, req.ProductID)
	if err != nil {
		log.Printf("Error removing from cart: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to remove from cart")
		return
	}
	if !removed {
		response.Error(w, http.StatusNotFound, "Cart item not found")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CartHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	if err := h.repo.ClearCart(sessionID); err != nil {
		log.Printf("Error clearing cart: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
