package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/repository"
)

func TestDashboardStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT\s+COALESCE\(SUM\(total_amount\), 0\)`).
		WillReturnRows(pgxmock.NewRows([]string{"sum", "count", "avg"}).
			AddRow(1234.56, 10, 123.456))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM customers`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT order_status, COUNT\(\*\)`).
		WillReturnRows(pgxmock.NewRows([]string{"order_status", "count"}).
			AddRow("Pending", 7).
			AddRow("Shipped", 3))

	repo := repository.NewReportRepository(mock)

	stats, err := repo.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1234.56, stats.TotalRevenue)
	assert.Equal(t, 10, stats.TotalOrders)
	assert.Equal(t, 4, stats.TotalCustomers)
	assert.Equal(t, map[string]int{"Pending": 7, "Shipped": 3}, stats.OrdersByStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueByDayDefaultLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	// limit <= 0 falls back to the 200-row window.
	mock.ExpectQuery(`SELECT\s+DATE\(order_date\) AS date,\s+SUM\(total_amount\)`).
		WithArgs(200).
		WillReturnRows(pgxmock.NewRows([]string{"date", "revenue"}).
			AddRow(day, 99.90).
			AddRow(day.AddDate(0, 0, 1), 150.00))

	repo := repository.NewReportRepository(mock)

	revenue, err := repo.RevenueByDay(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, revenue, 2)
	assert.Equal(t, day, revenue[0].Date)
	assert.Equal(t, 99.90, revenue[0].Revenue)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrdersByDayExplicitLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT\s+DATE\(order_date\) AS date,\s+COUNT\(\*\)`).
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows([]string{"date", "order_count"}).
			AddRow(day, 12))

	repo := repository.NewReportRepository(mock)

	counts, err := repo.OrdersByDay(context.Background(), 50)
	require.NoError(t, err)

	require.Len(t, counts, 1)
	assert.Equal(t, 12, counts[0].OrderCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	orderDate := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT DISTINCT\s+o\.order_id,\s+CONCAT\('cust-'`).
		WithArgs(200).
		WillReturnRows(pgxmock.NewRows([]string{
			"order_id", "customer_ref", "order_date", "ship_date",
			"order_status", "category", "channel_name", "total_amount",
			"discount", "method_name",
		}).AddRow(
			42, "cust-001", orderDate, nil,
			"Pending", "Apparel", "Website", 31.50,
			0.0, "ABA Pay",
		))

	repo := repository.NewReportRepository(mock)

	latest, err := repo.LatestOrders(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, latest, 1)
	assert.Equal(t, 42, latest[0].OrderID)
	assert.Equal(t, "cust-001", latest[0].CustomerRef)
	assert.Nil(t, latest[0].ShipDate)
	assert.Equal(t, "ABA Pay", latest[0].Payment)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockMovementsByOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM stock_movements\s+WHERE order_id = \$1`).
		WithArgs(42).
		WillReturnRows(pgxmock.NewRows([]string{
			"movement_id", "product_id", "order_id", "movement_type", "change_qty", "created_at",
		}).AddRow(1, 5, 42, "outgoing", -3, created))

	repo := repository.NewStockMovementRepository(mock)

	movements, err := repo.GetByOrderID(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, movements, 1)
	assert.Equal(t, "outgoing", movements[0].MovementType)
	assert.Equal(t, -3, movements[0].ChangeQty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockMovementsBadID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := repository.NewStockMovementRepository(mock)

	_, err = repo.GetByProductID(context.Background(), 0)
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	// No query reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}
