package repository

import (
	"context"
	"time"

	"ecommerce-backend/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
}

// CatalogRepository serves the reference-data lists that populate form
// selection controls. Empty lists are valid results.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]models.Category, error)
	ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error)
	ProductByID(ctx context.Context, id int) (*models.Product, error)
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	Channels(ctx context.Context) ([]models.Channel, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetAll(ctx context.Context) ([]models.OrderSummary, error)
	GetWithItems(ctx context.Context, id int) (*models.OrderDetails, error)
	UpdateStatus(ctx context.Context, id int, status string, shipDate *time.Time) error
}

type StockMovementRepository interface {
	GetByProductID(ctx context.Context, productID int) ([]models.StockMovement, error)
	GetByOrderID(ctx context.Context, orderID int) ([]models.StockMovement, error)
}

type ReportRepository interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	RevenueByDay(ctx context.Context, limit int) ([]models.DailyRevenue, error)
	OrdersByDay(ctx context.Context, limit int) ([]models.DailyOrderCount, error)
	LatestOrders(ctx context.Context, limit int) ([]models.LatestOrderRow, error)
}
