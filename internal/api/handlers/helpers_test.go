package handlers_test

import (
	"context"
	"net/http"
	"time"

	"ecommerce-backend/internal/api/handlers"
	"ecommerce-backend/internal/models"
)

type stubCustomerRepo struct {
	createErr error
	created   []models.Customer
	customers []models.Customer
}

func (s *stubCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	if s.createErr != nil {
		return s.createErr
	}
	c.CustomerID = len(s.created) + 1
	s.created = append(s.created, *c)
	return nil
}

func (s *stubCustomerRepo) GetByID(context.Context, int) (*models.Customer, error) {
	return nil, nil
}

func (s *stubCustomerRepo) GetByEmail(context.Context, string) (*models.Customer, error) {
	return nil, nil
}

func (s *stubCustomerRepo) GetAll(context.Context) ([]models.Customer, error) {
	return s.customers, nil
}

type stubCatalogRepo struct {
	categories []models.Category
	products   []models.Product
	methods    []models.PaymentMethod
	channels   []models.Channel
	err        error
}

func (s *stubCatalogRepo) Categories(context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func (s *stubCatalogRepo) ProductsByCategory(context.Context, int) ([]models.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogRepo) ProductByID(context.Context, int) (*models.Product, error) {
	return nil, s.err
}

func (s *stubCatalogRepo) PaymentMethods(context.Context) ([]models.PaymentMethod, error) {
	return s.methods, s.err
}

func (s *stubCatalogRepo) Channels(context.Context) ([]models.Channel, error) {
	return s.channels, s.err
}

type stubOrderRepo struct {
	createErr error
	statusErr error
	details   *models.OrderDetails
	getErr    error
}

func (s *stubOrderRepo) Create(_ context.Context, order *models.Order, items []models.OrderItem) error {
	if s.createErr != nil {
		return s.createErr
	}
	order.OrderID = 42
	order.Status = models.StatusPending
	order.OrderDate = time.Now()
	return nil
}

func (s *stubOrderRepo) GetAll(context.Context) ([]models.OrderSummary, error) {
	return nil, nil
}

func (s *stubOrderRepo) GetWithItems(context.Context, int) (*models.OrderDetails, error) {
	return s.details, s.getErr
}

func (s *stubOrderRepo) UpdateStatus(context.Context, int, string, *time.Time) error {
	return s.statusErr
}

type stubMovementRepo struct{}

func (stubMovementRepo) GetByProductID(context.Context, int) ([]models.StockMovement, error) {
	return nil, nil
}

func (stubMovementRepo) GetByOrderID(context.Context, int) ([]models.StockMovement, error) {
	return nil, nil
}

type stubReportRepo struct {
	stats *models.DashboardStats
}

func (s *stubReportRepo) DashboardStats(context.Context) (*models.DashboardStats, error) {
	return s.stats, nil
}

func (s *stubReportRepo) RevenueByDay(context.Context, int) ([]models.DailyRevenue, error) {
	return nil, nil
}

func (s *stubReportRepo) OrdersByDay(context.Context, int) ([]models.DailyOrderCount, error) {
	return nil, nil
}

func (s *stubReportRepo) LatestOrders(context.Context, int) ([]models.LatestOrderRow, error) {
	return nil, nil
}

type stubInvalidator struct {
	calls int
}

func (s *stubInvalidator) InvalidateProducts(context.Context) {
	s.calls++
}

type testEnv struct {
	customers   *stubCustomerRepo
	catalog     *stubCatalogRepo
	orders      *stubOrderRepo
	reports     *stubReportRepo
	invalidator *stubInvalidator
	router      http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		customers:   &stubCustomerRepo{},
		catalog:     &stubCatalogRepo{},
		orders:      &stubOrderRepo{},
		reports:     &stubReportRepo{stats: &models.DashboardStats{}},
		invalidator: &stubInvalidator{},
	}
	env.router = handlers.NewRouter(
		handlers.NewCustomerHandler(env.customers),
		handlers.NewCatalogHandler(env.catalog),
		handlers.NewOrderHandler(env.orders, env.invalidator),
		handlers.NewStockMovementHandler(stubMovementRepo{}),
		handlers.NewReportHandler(env.reports),
	)
	return env
}
