package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/validation"
)

type CatalogHandler struct {
	repo repository.CatalogRepository
}

func NewCatalogHandler(repo repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.Categories(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "list categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid category id", nil)
		return
	}

	products, err := h.repo.ProductsByCategory(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "list products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.repo.PaymentMethods(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "list payment methods")
		return
	}
	if methods == nil {
		methods = []models.PaymentMethod{}
	}
	writeJSON(w, http.StatusOK, methods)
}

func (h *CatalogHandler) Channels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.repo.Channels(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "list channels")
		return
	}
	if channels == nil {
		channels = []models.Channel{}
	}
	writeJSON(w, http.StatusOK, channels)
}

// Cities serves the static city reference list used for postal-code
// auto-fill. No database behind it.
func (h *CatalogHandler) Cities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, validation.Cities())
}
