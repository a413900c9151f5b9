package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
)

type StockMovementHandler struct {
	repo repository.StockMovementRepository
}

func NewStockMovementHandler(repo repository.StockMovementRepository) *StockMovementHandler {
	return &StockMovementHandler{repo: repo}
}

func (h *StockMovementHandler) ByProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid product id", nil)
		return
	}

	movements, err := h.repo.GetByProductID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "list stock movements")
		return
	}
	if movements == nil {
		movements = []models.StockMovement{}
	}
	writeJSON(w, http.StatusOK, movements)
}

func (h *StockMovementHandler) ByOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	movements, err := h.repo.GetByOrderID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, "list stock movements")
		return
	}
	if movements == nil {
		movements = []models.StockMovement{}
	}
	writeJSON(w, http.StatusOK, movements)
}
