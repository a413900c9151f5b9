package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"ecommerce-backend/internal/models"
)

type reportRepo struct {
	db DB
}

func NewReportRepository(db DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total_amount), 0),
			COUNT(*),
			COALESCE(AVG(total_amount), 0)
		FROM orders
	`).Scan(&stats.TotalRevenue, &stats.TotalOrders, &stats.AvgOrderValue)
	if err != nil {
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&stats.TotalCustomers)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer count: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT order_status, COUNT(*)
		FROM orders
		GROUP BY order_status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders by status: %w", err)
	}
	defer rows.Close()

	stats.OrdersByStatus = make(map[string]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		stats.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return &stats, nil
}

func (r *reportRepo) RevenueByDay(ctx context.Context, limit int) ([]models.DailyRevenue, error) {
	if limit <= 0 {
		limit = 200
	}

	sql := `
		SELECT
			DATE(order_date) AS date,
			SUM(total_amount) AS revenue
		FROM (
			SELECT order_date, total_amount
			FROM orders
			ORDER BY order_date DESC
			LIMIT $1
		) AS latest_orders
		GROUP BY DATE(order_date)
		ORDER BY date`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily revenue: %w", err)
	}
	defer rows.Close()

	var revenue []models.DailyRevenue

	for rows.Next() {
		var d models.DailyRevenue
		if err := rows.Scan(&d.Date, &d.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan daily revenue: %w", err)
		}
		revenue = append(revenue, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return revenue, nil
}

func (r *reportRepo) OrdersByDay(ctx context.Context, limit int) ([]models.DailyOrderCount, error) {
	if limit <= 0 {
		limit = 200
	}

	sql := `
		SELECT
			DATE(order_date) AS date,
			COUNT(*) AS order_count
		FROM (
			SELECT order_date
			FROM orders
			ORDER BY order_date DESC
			LIMIT $1
		) AS latest_orders
		GROUP BY DATE(order_date)
		ORDER BY date`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily order counts: %w", err)
	}
	defer rows.Close()

	var counts []models.DailyOrderCount

	for rows.Next() {
		var d models.DailyOrderCount
		if err := rows.Scan(&d.Date, &d.OrderCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily order count: %w", err)
		}
		counts = append(counts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return counts, nil
}

func (r *reportRepo) LatestOrders(ctx context.Context, limit int) ([]models.LatestOrderRow, error) {
	if limit <= 0 {
		limit = 200
	}

	sql := `
		SELECT DISTINCT
			o.order_id,
			CONCAT('cust-', LPAD(c.customer_id::text, 3, '0')) AS customer_ref,
			o.order_date,
			o.ship_date,
			o.order_status,
			COALESCE(pc.category_name, 'N/A') AS category,
			ch.channel_name,
			o.total_amount,
			COALESCE(o.discount, 0) AS discount,
			pm.method_name
		FROM orders o
		JOIN customers c ON o.customer_id = c.customer_id
		JOIN channels ch ON o.channel_id = ch.channel_id
		JOIN payment_methods pm ON o.payment_method_id = pm.payment_method_id
		LEFT JOIN order_items oi ON o.order_id = oi.order_id
		LEFT JOIN products p ON oi.product_id = p.product_id
		LEFT JOIN product_categories pc ON p.category_id = pc.category_id
		ORDER BY o.order_date DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest orders: %w", err)
	}
	defer rows.Close()

	var latest []models.LatestOrderRow

	for rows.Next() {
		var (
			row      models.LatestOrderRow
			shipDate pgtype.Timestamptz
		)
		err := rows.Scan(
			&row.OrderID,
			&row.CustomerRef,
			&row.OrderDate,
			&shipDate,
			&row.Status,
			&row.Category,
			&row.Channel,
			&row.TotalAmount,
			&row.Discount,
			&row.Payment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan latest order: %w", err)
		}
		if shipDate.Valid {
			t := shipDate.Time
			row.ShipDate = &t
		}
		latest = append(latest, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return latest, nil
}
