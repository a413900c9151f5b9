package repository

import (
	"context"
	"fmt"

	"ecommerce-backend/internal/models"
)

// stockMovementRepo reads the movement ledger written by order creation.
type stockMovementRepo struct {
	db DB
}

func NewStockMovementRepository(db DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) GetByProductID(ctx context.Context, productID int) ([]models.StockMovement, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}
	return r.query(ctx,
		`SELECT movement_id, product_id, order_id, movement_type, change_qty, created_at
		 FROM stock_movements
		 WHERE product_id = $1
		 ORDER BY created_at DESC`,
		productID,
	)
}

func (r *stockMovementRepo) GetByOrderID(ctx context.Context, orderID int) ([]models.StockMovement, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order ID must be positive", ErrInvalidInput)
	}
	return r.query(ctx,
		`SELECT movement_id, product_id, order_id, movement_type, change_qty, created_at
		 FROM stock_movements
		 WHERE order_id = $1
		 ORDER BY created_at DESC`,
		orderID,
	)
}

func (r *stockMovementRepo) query(ctx context.Context, sql string, arg any) ([]models.StockMovement, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock movements: %w", err)
	}
	defer rows.Close()

	var movements []models.StockMovement

	for rows.Next() {
		var m models.StockMovement
		err := rows.Scan(
			&m.MovementID,
			&m.ProductID,
			&m.OrderID,
			&m.MovementType,
			&m.ChangeQty,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return movements, nil
}
