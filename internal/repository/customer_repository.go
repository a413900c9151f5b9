package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ecommerce-backend/internal/models"
)

type customerRepo struct {
	db DB
}

var validate = validator.New()

func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	if err := validate.Struct(c); err != nil {
		var validationErr validator.ValidationErrors
		if errors.As(err, &validationErr) {
			firstErr := validationErr[0]
			switch firstErr.Field() {
			case "Email":
				return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
			case "Phone":
				return fmt.Errorf("%w: phone must be in canonical +855 form", ErrInvalidInput)
			case "FirstName", "LastName":
				return fmt.Errorf("%w: name must be 2-50 characters", ErrInvalidInput)
			case "PostalCode":
				return fmt.Errorf("%w: postal code must be 5-6 digits", ErrInvalidInput)
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sql := `
		INSERT INTO customers (
			first_name,
			last_name,
			email,
			phone,
			address,
			city,
			postal_code,
			created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING customer_id
	`

	c.CreatedAt = time.Now()

	err := r.db.QueryRow(ctx, sql,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.PostalCode,
		c.CreatedAt,
	).Scan(&c.CustomerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return fmt.Errorf("%w: email already exists", ErrDuplicate)
			}
			return fmt.Errorf("%w: customer already exists", ErrDuplicate)
		}
		return fmt.Errorf("create customer: %w", err)
	}

	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID must be positive", ErrInvalidInput)
	}

	sql := `
		SELECT
			customer_id,
			first_name,
			last_name,
			email,
			phone,
			address,
			city,
			postal_code,
			created_at
		FROM customers WHERE customer_id = $1
	`

	var customer models.Customer

	err := r.db.QueryRow(ctx, sql, id).Scan(
		&customer.CustomerID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.City,
		&customer.PostalCode,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer with id %d: %w", id, err)
	}

	return &customer, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}

	sql := `
		SELECT
			customer_id,
			first_name,
			last_name,
			email,
			phone,
			address,
			city,
			postal_code,
			created_at
		FROM customers WHERE email = $1
	`

	var customer models.Customer

	err := r.db.QueryRow(ctx, sql, email).Scan(
		&customer.CustomerID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.City,
		&customer.PostalCode,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return &customer, nil
}

func (r *customerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	sql := `
	SELECT
		customer_id,
		first_name,
		last_name,
		email,
		phone,
		address,
		city,
		postal_code,
		created_at
	FROM customers
	ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer

	for rows.Next() {
		var c models.Customer

		err := rows.Scan(
			&c.CustomerID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Phone,
			&c.Address,
			&c.City,
			&c.PostalCode,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customers: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return customers, nil
}
