package handlers

import (
	"net/http"
	"strconv"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
)

type ReportHandler struct {
	repo repository.ReportRepository
}

func NewReportHandler(repo repository.ReportRepository) *ReportHandler {
	return &ReportHandler{repo: repo}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.DashboardStats(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "get dashboard stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) RevenueByDay(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.repo.RevenueByDay(r.Context(), limitParam(r))
	if err != nil {
		writeRepoError(w, r, err, "get revenue by day")
		return
	}
	if revenue == nil {
		revenue = []models.DailyRevenue{}
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (h *ReportHandler) OrdersByDay(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repo.OrdersByDay(r.Context(), limitParam(r))
	if err != nil {
		writeRepoError(w, r, err, "get orders by day")
		return
	}
	if counts == nil {
		counts = []models.DailyOrderCount{}
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *ReportHandler) LatestOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.LatestOrders(r.Context(), limitParam(r))
	if err != nil {
		writeRepoError(w, r, err, "get latest orders")
		return
	}
	if orders == nil {
		orders = []models.LatestOrderRow{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// limitParam reads ?limit=, defaulting to 0 so repositories apply their
// own default.
func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
