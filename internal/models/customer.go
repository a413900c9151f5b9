package models

import "time"

type Customer struct {
	CustomerID int       `json:"customer_id"`
	FirstName  string    `json:"first_name" validate:"required,min=2,max=50"`
	LastName   string    `json:"last_name" validate:"required,min=2,max=50"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      string    `json:"phone" validate:"required,e164"`
	Address    string    `json:"address" validate:"required,max=200"`
	City       string    `json:"city" validate:"required"`
	PostalCode string    `json:"postal_code" validate:"required,numeric,min=5,max=6"`
	CreatedAt  time.Time `json:"created_at"`
}
