package models

import "time"

// Order statuses as stored in orders.order_status.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

type Order struct {
	OrderID         int        `json:"order_id"`
	CustomerID      int        `json:"customer_id"`
	PaymentMethodID int        `json:"payment_method_id"`
	ChannelID       int        `json:"channel_id"`
	OrderDate       time.Time  `json:"order_date"`
	ShipDate        *time.Time `json:"ship_date,omitempty"`
	Status          string     `json:"order_status"`
	TotalAmount     float64    `json:"total_amount"`
	Discount        float64    `json:"discount"`
	ShippingAddress string     `json:"shipping_address"`
}

type OrderItem struct {
	OrderItemID int     `json:"order_item_id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderSummary is an orders row joined with display names for listing.
type OrderSummary struct {
	OrderID       int        `json:"order_id"`
	OrderDate     time.Time  `json:"order_date"`
	ShipDate      *time.Time `json:"ship_date,omitempty"`
	Status        string     `json:"order_status"`
	TotalAmount   float64    `json:"total_amount"`
	CustomerName  string     `json:"customer_name"`
	PaymentMethod string     `json:"payment_method"`
	Channel       string     `json:"channel"`
}

type OrderItemDetail struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderDetails struct {
	Order         Order             `json:"order"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	PaymentMethod string            `json:"payment_method"`
	Channel       string            `json:"channel"`
	Items         []OrderItemDetail `json:"items"`
}

// StockMovement records one stock change, written in the same transaction
// as the order that caused it.
type StockMovement struct {
	MovementID   int       `json:"movement_id"`
	ProductID    int       `json:"product_id"`
	OrderID      int       `json:"order_id"`
	MovementType string    `json:"movement_type"`
	ChangeQty    int       `json:"change_qty"`
	CreatedAt    time.Time `json:"created_at"`
}
