package models

import "time"

type DashboardStats struct {
	TotalRevenue   float64        `json:"total_revenue"`
	TotalOrders    int            `json:"total_orders"`
	TotalCustomers int            `json:"total_customers"`
	AvgOrderValue  float64        `json:"avg_order_value"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
}

type DailyRevenue struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

type DailyOrderCount struct {
	Date       time.Time `json:"date"`
	OrderCount int       `json:"order_count"`
}

// LatestOrderRow backs the latest-orders report table.
type LatestOrderRow struct {
	OrderID     int        `json:"order_id"`
	CustomerRef string     `json:"customer_ref"`
	OrderDate   time.Time  `json:"order_date"`
	ShipDate    *time.Time `json:"ship_date,omitempty"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	Channel     string     `json:"channel"`
	TotalAmount float64    `json:"total_amount"`
	Discount    float64    `json:"discount"`
	Payment     string     `json:"payment"`
}
