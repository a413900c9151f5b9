package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
)

// ProductInvalidator drops cached product entries after stock changes.
type ProductInvalidator interface {
	InvalidateProducts(ctx context.Context)
}

type OrderHandler struct {
	repo        repository.OrderRepository
	invalidator ProductInvalidator // nil when the cache is disabled
}

func NewOrderHandler(repo repository.OrderRepository, invalidator ProductInvalidator) *OrderHandler {
	return &OrderHandler{repo: repo, invalidator: invalidator}
}

type OrderItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type OrderCreateRequest struct {
	CustomerID      int                `json:"customer_id"`
	PaymentMethodID int                `json:"payment_method_id"`
	ChannelID       int                `json:"channel_id"`
	ShippingAddress string             `json:"shipping_address"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderStatusRequest struct {
	Status   string     `json:"status"`
	ShipDate *time.Time `json:"ship_date,omitempty"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order := &models.Order{
		CustomerID:      req.CustomerID,
		PaymentMethodID: req.PaymentMethodID,
		ChannelID:       req.ChannelID,
		ShippingAddress: req.ShippingAddress,
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	if err := h.repo.Create(r.Context(), order, items); err != nil {
		writeRepoError(w, r, err, "create order")
		return
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateProducts(r.Context())
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "list orders")
		return
	}
	if orders == nil {
		orders = []models.OrderSummary{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	details, err := h.repo.GetWithItems(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "get order")
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	var req OrderStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), id, req.Status, req.ShipDate); err != nil {
		writeRepoError(w, r, err, "update order status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"order_id": id,
		"status":   req.Status,
	})
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid order id", nil)
		return 0, false
	}
	return id, true
}
