package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/response"
)

type OrderProvider interface {
	CreateOrder(order *models.Order) error
	GetOrders() ([]models.Order, error)
	GetOrderByOrderID(orderID string) (*models.Order, error)
	UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatus(id uint, status models.PaymentStatus) (*models.Order, error)
}

type OrdersHandler struct {
	repo OrderProvider
}

func NewOrdersHandler(r OrderProvider) *OrdersHandler {
	return &OrdersHandler{
		repo: r,
	}
}

type OrderItemRequest struct {
	ProductID    uint        `json:"productId"`
	Quantity     int         `json:"quantity"`
	Price        string      `json:"price"`
	Name         string      `json:"name"`
	CustomDesign models.JSON `json:"customDesign"`
}

// CreateOrderRequest is the POST /api/orders body. It deliberately has no
// status fields: every order starts pending/pending and a caller cannot
// preset either axis.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
	Items           []OrderItemRequest `json:"items"`
	Total           string             `json:"total"`
	PaymentMethod   string             `json:"paymentMethod"`
	District        string             `json:"district"`
	Thana           string             `json:"thana"`
}

// ToOrder validates the payload and builds the order with its immutable item
// snapshot. The asserted total is recorded as-is; it is not recomputed
// against the items or the catalog.
func (req *CreateOrderRequest) ToOrder() (*models.Order, *models.ValidationError) {
	ve := &models.ValidationError{}

	if strings.TrimSpace(req.CustomerName) == "" {
		ve.Add("customerName", "Customer name is required")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		ve.Add("customerPhone", "Phone number is required")
	}
	if strings.TrimSpace(req.CustomerAddress) == "" {
		ve.Add("customerAddress", "Address is required")
	}

	items := make(models.OrderItemList, 0, len(req.Items))
	if len(req.Items) == 0 {
		ve.Add("items", "At least one item is required")
	}
	for i, item := range req.Items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

		if item.ProductID == 0 {
			ve.Add(field("productId"), "Product ID is required")
		}
		if item.Quantity < 1 {
			ve.Add(field("quantity"), "Quantity must be at least 1")
		}
		if strings.TrimSpace(item.Name) == "" {
			ve.Add(field("name"), "Name is required")
		}

		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			ve.Add(field("price"), "Price must be a decimal number")
		} else if price.IsNegative() {
			ve.Add(field("price"), "Price must not be negative")
		}

		items = append(items, models.OrderItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Price:        price,
			Name:         item.Name,
			CustomDesign: item.CustomDesign,
		})
	}

	total := decimal.Zero
	if strings.TrimSpace(req.Total) == "" {
		ve.Add("total", "Total is required")
	} else if t, err := decimal.NewFromString(req.Total); err != nil {
		ve.Add("total", "Total must be a decimal number")
	} else if t.IsNegative() {
		ve.Add("total", "Total must not be negative")
	} else {
		total = t
	}

	paymentMethod := models.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.Valid() {
		ve.Add("paymentMethod", "Payment method must be one of cod, bkash, nagad, upay")
	}

	if ve.Err() != nil {
		return nil, ve
	}

	return &models.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		Total:           total,
		PaymentMethod:   paymentMethod,
		District:        req.District,
		Thana:           req.Thana,
	}, nil
}

// UpdateStatusRequest may carry either axis or both; each moves
// independently.
type UpdateStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, ve := req.ToOrder()
	if ve != nil {
		response.ValidationFailed(w, ve)
		return
	}

	if err := h.repo.CreateOrder(order); err != nil {
		log.Printf("Error creating order: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	response.JSON(w, http.StatusCreated, order)
}

func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.GetOrders()
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	response.JSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) HandleGetByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")

	order, err := h.repo.GetOrderByOrderID(orderID)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("Error fetching order: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	response.JSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.OrderStatus == "" && req.PaymentStatus == "" {
		response.Error(w, http.StatusBadRequest, "Order status or payment status is required")
		return
	}

	// Both axes are checked before either update runs, so a body with one
	// valid and one invalid value rejects without touching the order.
	orderStatus := models.OrderStatus(req.OrderStatus)
	if req.OrderStatus != "" && !orderStatus.Valid() {
		response.Error(w, http.StatusBadRequest, "Invalid order status")
		return
	}
	paymentStatus := models.PaymentStatus(req.PaymentStatus)
	if req.PaymentStatus != "" && !paymentStatus.Valid() {
		response.Error(w, http.StatusBadRequest, "Invalid payment status")
		return
	}

	var order *models.Order
	if req.OrderStatus != "" {
		order, err = h.repo.UpdateOrderStatus(uint(id), orderStatus)
		if err != nil {
			h.writeStatusError(w, err)
			return
		}
	}
	if req.PaymentStatus != "" {
		order, err = h.repo.UpdatePaymentStatus(uint(id), paymentStatus)
		if err != nil {
			h.writeStatusError(w, err)
			return
		}
	}
	response.JSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) writeStatusError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrOrderNotFound):
		response.Error(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, models.ErrInvalidOrderStatus):
		response.Error(w, http.StatusBadRequest, "Invalid order status")
	case errors.Is(err, models.ErrInvalidPaymentStatus):
		response.Error(w, http.StatusBadRequest, "Invalid payment status")
	default:
		log.Printf("Error updating order status: %v", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update order status")
	}
}
