package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/validation"
)

type orderRepo struct {
	db DB
}

func NewOrderRepository(db DB) OrderRepository {
	return &orderRepo{db: db}
}

var validStatuses = map[string]bool{
	models.StatusPending:    true,
	models.StatusProcessing: true,
	models.StatusShipped:    true,
	models.StatusDelivered:  true,
	models.StatusCancelled:  true,
}

// Create inserts the order header, its items, the stock decrements and
// the stock movements in one transaction. Prices come from the products
// table at insert time, never from the caller.
func (r *orderRepo) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	if order == nil {
		return fmt.Errorf("%w: order cannot be nil", ErrInvalidInput)
	}
	if order.CustomerID <= 0 {
		return fmt.Errorf("%w: customer ID must be positive", ErrInvalidInput)
	}
	if order.PaymentMethodID <= 0 {
		return fmt.Errorf("%w: payment method ID must be positive", ErrInvalidInput)
	}
	if order.ChannelID <= 0 {
		return fmt.Errorf("%w: channel ID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(order.ShippingAddress) == "" {
		return fmt.Errorf("%w: shipping address is required", ErrInvalidInput)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}

	for _, item := range items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
		}
		if err := validation.CheckQuantity(item.Quantity); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var customerID int
	err = tx.QueryRow(ctx,
		`SELECT customer_id FROM customers WHERE customer_id = $1`,
		order.CustomerID,
	).Scan(&customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: customer %d", ErrNotFound, order.CustomerID)
		}
		return fmt.Errorf("failed to check customer: %w", err)
	}

	var paymentMethodID int
	err = tx.QueryRow(ctx,
		`SELECT payment_method_id FROM payment_methods WHERE payment_method_id = $1 AND is_active = TRUE`,
		order.PaymentMethodID,
	).Scan(&paymentMethodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: payment method %d", ErrNotFound, order.PaymentMethodID)
		}
		return fmt.Errorf("failed to check payment method: %w", err)
	}

	var channelID int
	err = tx.QueryRow(ctx,
		`SELECT channel_id FROM channels WHERE channel_id = $1`,
		order.ChannelID,
	).Scan(&channelID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: channel %d", ErrNotFound, order.ChannelID)
		}
		return fmt.Errorf("failed to check channel: %w", err)
	}

	productIDs := make([]int, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	rows, err := tx.Query(ctx,
		`SELECT product_id, unit_price, stock_quantity
		 FROM products
		 WHERE product_id = ANY($1::int[]) AND is_active = TRUE`,
		productIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to get product information: %w", err)
	}
	defer rows.Close()

	productInfo := make(map[int]productInfoRow)
	for rows.Next() {
		var (
			id    int
			price float64
			stock int
		)
		if err := rows.Scan(&id, &price, &stock); err != nil {
			return fmt.Errorf("failed to scan product data: %w", err)
		}
		productInfo[id] = productInfoRow{price: price, stock: stock}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to complete row iteration: %w", err)
	}
	rows.Close()

	// Price the items against current stock. remaining tracks repeated
	// product IDs within one order.
	remaining := make(map[int]int, len(productInfo))
	for id, info := range productInfo {
		remaining[id] = info.stock
	}

	var total float64
	for i := range items {
		info, ok := productInfo[items[i].ProductID]
		if !ok {
			return fmt.Errorf("%w: product %d", ErrNotFound, items[i].ProductID)
		}
		if remaining[items[i].ProductID] < items[i].Quantity {
			return fmt.Errorf("%w: product %d", ErrNotEnough, items[i].ProductID)
		}
		remaining[items[i].ProductID] -= items[i].Quantity

		items[i].UnitPrice = info.price
		items[i].Subtotal = info.price * float64(items[i].Quantity)
		total += items[i].Subtotal
	}

	if err := validation.CheckAmount(total); err != nil {
		return fmt.Errorf("%w: order total: %v", ErrInvalidInput, err)
	}

	order.Status = models.StatusPending
	order.TotalAmount = total

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (
			customer_id,
			payment_method_id,
			channel_id,
			order_status,
			total_amount,
			shipping_address
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING order_id, order_date`,
		order.CustomerID,
		order.PaymentMethodID,
		order.ChannelID,
		order.Status,
		order.TotalAmount,
		order.ShippingAddress,
	).Scan(&order.OrderID, &order.OrderDate)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.OrderID

		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
			 VALUES ($1, $2, $3, $4, $5)`,
			items[i].OrderID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].UnitPrice,
			items[i].Subtotal,
		)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}

		// The stock predicate keeps a concurrent order from driving the
		// count negative; zero rows affected aborts the whole order.
		result, err := tx.Exec(ctx,
			`UPDATE products
			 SET stock_quantity = stock_quantity - $1
			 WHERE product_id = $2 AND stock_quantity >= $1`,
			items[i].Quantity,
			items[i].ProductID,
		)
		if err != nil {
			return fmt.Errorf("failed to update stock for product %d: %w", items[i].ProductID, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %d", ErrNotEnough, items[i].ProductID)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO stock_movements (product_id, order_id, movement_type, change_qty)
			 VALUES ($1, $2, $3, $4)`,
			items[i].ProductID,
			order.OrderID,
			"outgoing",
			-items[i].Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to record stock movement: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type productInfoRow struct {
	price float64
	stock int
}

func (r *orderRepo) GetAll(ctx context.Context) ([]models.OrderSummary, error) {
	sql := `
	SELECT
		o.order_id,
		o.order_date,
		o.ship_date,
		o.order_status,
		o.total_amount,
		c.first_name || ' ' || c.last_name,
		pm.method_name,
		ch.channel_name
	FROM orders o
	JOIN customers c ON o.customer_id = c.customer_id
	JOIN payment_methods pm ON o.payment_method_id = pm.payment_method_id
	JOIN channels ch ON o.channel_id = ch.channel_id
	ORDER BY o.order_date DESC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	defer rows.Close()

	var orders []models.OrderSummary

	for rows.Next() {
		var (
			o        models.OrderSummary
			shipDate pgtype.Timestamptz
		)
		err := rows.Scan(
			&o.OrderID,
			&o.OrderDate,
			&shipDate,
			&o.Status,
			&o.TotalAmount,
			&o.CustomerName,
			&o.PaymentMethod,
			&o.Channel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order summary: %w", err)
		}
		if shipDate.Valid {
			t := shipDate.Time
			o.ShipDate = &t
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return orders, nil
}

func (r *orderRepo) GetWithItems(ctx context.Context, id int) (*models.OrderDetails, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: order ID must be positive", ErrInvalidInput)
	}

	sql := `
	SELECT
		o.order_id,
		o.customer_id,
		o.payment_method_id,
		o.channel_id,
		o.order_date,
		o.ship_date,
		o.order_status,
		o.total_amount,
		o.discount,
		o.shipping_address,
		c.first_name || ' ' || c.last_name,
		c.email,
		pm.method_name,
		ch.channel_name,
		p.product_name,
		oi.quantity,
		oi.unit_price,
		oi.subtotal
	FROM orders o
	JOIN customers c ON o.customer_id = c.customer_id
	JOIN payment_methods pm ON o.payment_method_id = pm.payment_method_id
	JOIN channels ch ON o.channel_id = ch.channel_id
	LEFT JOIN order_items oi ON o.order_id = oi.order_id
	LEFT JOIN products p ON oi.product_id = p.product_id
	WHERE o.order_id = $1
	ORDER BY oi.order_item_id`

	rows, err := r.db.Query(ctx, sql, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order with items %d: %w", id, err)
	}
	defer rows.Close()

	var details *models.OrderDetails

	for rows.Next() {
		var (
			current     models.Order
			shipDate    pgtype.Timestamptz
			custName    string
			custEmail   string
			payment     string
			channel     string
			productName pgtype.Text
			quantity    pgtype.Int4
			unitPrice   pgtype.Float8
			subtotal    pgtype.Float8
		)

		err := rows.Scan(
			&current.OrderID,
			&current.CustomerID,
			&current.PaymentMethodID,
			&current.ChannelID,
			&current.OrderDate,
			&shipDate,
			&current.Status,
			&current.TotalAmount,
			&current.Discount,
			&current.ShippingAddress,
			&custName,
			&custEmail,
			&payment,
			&channel,
			&productName,
			&quantity,
			&unitPrice,
			&subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order/item: %w", err)
		}

		if details == nil {
			if shipDate.Valid {
				t := shipDate.Time
				current.ShipDate = &t
			}
			details = &models.OrderDetails{
				Order:         current,
				CustomerName:  custName,
				CustomerEmail: custEmail,
				PaymentMethod: payment,
				Channel:       channel,
			}
		}

		if productName.Valid {
			details.Items = append(details.Items, models.OrderItemDetail{
				ProductName: productName.String,
				Quantity:    int(quantity.Int32),
				UnitPrice:   unitPrice.Float64,
				Subtotal:    subtotal.Float64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	if details == nil {
		return nil, ErrNotFound
	}

	return details, nil
}

// UpdateStatus moves an order through its lifecycle. Shipped and
// Delivered require a ship date no earlier than the order date.
func (r *orderRepo) UpdateStatus(ctx context.Context, id int, status string, shipDate *time.Time) error {
	if id <= 0 {
		return fmt.Errorf("%w: order ID must be positive", ErrInvalidInput)
	}
	if !validStatuses[status] {
		return fmt.Errorf("%w: invalid status '%s'", ErrInvalidInput, status)
	}

	var orderDate time.Time
	err := r.db.QueryRow(ctx,
		`SELECT order_date FROM orders WHERE order_id = $1`,
		id,
	).Scan(&orderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get order %d: %w", id, err)
	}

	needsShipDate := status == models.StatusShipped || status == models.StatusDelivered

	if needsShipDate {
		if shipDate == nil {
			return fmt.Errorf("%w: ship date is required for status '%s'", ErrInvalidInput, status)
		}
		if err := validation.ShipDate(orderDate, *shipDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		result, err := r.db.Exec(ctx,
			`UPDATE orders SET order_status = $1, ship_date = $2 WHERE order_id = $3`,
			status, *shipDate, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update order %d: %w", id, err)
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	}

	result, err := r.db.Exec(ctx,
		`UPDATE orders SET order_status = $1 WHERE order_id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
