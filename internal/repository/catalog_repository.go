package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ecommerce-backend/internal/models"
)

type catalogRepo struct {
	db DB
}

func NewCatalogRepository(db DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Categories(ctx context.Context) ([]models.Category, error) {
	sql := `
		SELECT category_id, category_name, description, is_active
		FROM product_categories
		WHERE is_active = TRUE
		ORDER BY category_name
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category

	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Description, &c.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return categories, nil
}

func (r *catalogRepo) ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category ID must be positive", ErrInvalidInput)
	}

	sql := `
		SELECT product_id, category_id, product_name, description, unit_price, stock_quantity, is_active
		FROM products
		WHERE category_id = $1 AND is_active = TRUE
		ORDER BY product_name
	`

	rows, err := r.db.Query(ctx, sql, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for category %d: %w", categoryID, err)
	}
	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ProductID,
			&p.CategoryID,
			&p.Name,
			&p.Description,
			&p.UnitPrice,
			&p.StockQuantity,
			&p.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return products, nil
}

func (r *catalogRepo) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}

	sql := `
		SELECT product_id, category_id, product_name, description, unit_price, stock_quantity, is_active
		FROM products
		WHERE product_id = $1
	`

	var p models.Product

	err := r.db.QueryRow(ctx, sql, id).Scan(
		&p.ProductID,
		&p.CategoryID,
		&p.Name,
		&p.Description,
		&p.UnitPrice,
		&p.StockQuantity,
		&p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}

	return &p, nil
}

func (r *catalogRepo) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	sql := `
		SELECT payment_method_id, method_name, is_active
		FROM payment_methods
		WHERE is_active = TRUE
		ORDER BY payment_method_id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment methods: %w", err)
	}
	defer rows.Close()

	var methods []models.PaymentMethod

	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(&m.PaymentMethodID, &m.Name, &m.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan payment method: %w", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return methods, nil
}

func (r *catalogRepo) Channels(ctx context.Context) ([]models.Channel, error) {
	sql := `
		SELECT channel_id, channel_name, description
		FROM channels
		ORDER BY channel_id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}
	defer rows.Close()

	var channels []models.Channel

	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ChannelID, &ch.Name, &ch.Description); err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return channels, nil
}
