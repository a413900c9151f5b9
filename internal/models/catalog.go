package models

type Category struct {
	CategoryID  int    `json:"category_id"`
	Name        string `json:"category_name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type Product struct {
	ProductID     int     `json:"product_id"`
	CategoryID    int     `json:"category_id"`
	Name          string  `json:"product_name"`
	Description   string  `json:"description"`
	UnitPrice     float64 `json:"unit_price"`
	StockQuantity int     `json:"stock_quantity"`
	IsActive      bool    `json:"is_active"`
}

type PaymentMethod struct {
	PaymentMethodID int    `json:"payment_method_id"`
	Name            string `json:"method_name"`
	IsActive        bool   `json:"is_active"`
}

type Channel struct {
	ChannelID   int    `json:"channel_id"`
	Name        string `json:"channel_name"`
	Description string `json:"description"`
}
