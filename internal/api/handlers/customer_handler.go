package handlers

import (
	"net/http"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/validation"
)

type CustomerHandler struct {
	repo repository.CustomerRepository
}

func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

type CustomerCreateRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// Create registers a customer. Field validators run first so every
// problem comes back at once; persistence handles email uniqueness.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fieldErrors := map[string]string{}

	firstName, err := validation.Name(req.FirstName, "First name")
	if err != nil {
		fieldErrors["first_name"] = err.Error()
	}
	lastName, err := validation.Name(req.LastName, "Last name")
	if err != nil {
		fieldErrors["last_name"] = err.Error()
	}
	email, err := validation.Email(req.Email)
	if err != nil {
		fieldErrors["email"] = err.Error()
	}
	phone, err := validation.Phone(req.Phone)
	if err != nil {
		fieldErrors["phone"] = err.Error()
	}
	postalCode, err := validation.PostalCodeForCity(req.City, req.PostalCode)
	if err != nil {
		fieldErrors["postal_code"] = err.Error()
	}
	if req.Address == "" {
		fieldErrors["address"] = "address is required"
	}
	if req.City == "" {
		fieldErrors["city"] = "city is required"
	}

	if len(fieldErrors) > 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "one or more fields are invalid", fieldErrors)
		return
	}

	customer := &models.Customer{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: postalCode,
	}

	if err := h.repo.Create(r.Context(), customer); err != nil {
		writeRepoError(w, r, err, "create customer")
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.repo.GetAll(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "list customers")
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}
