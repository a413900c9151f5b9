package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every handler onto the API surface: one route per
// reference-data list, persistence operation, and report.
func NewRouter(customers *CustomerHandler, catalog *CatalogHandler, orders *OrderHandler, movements *StockMovementHandler, reports *ReportHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/customers", customers.Create)
		r.Get("/customers", customers.GetAll)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", catalog.Categories)
			r.Get("/categories/{id}/products", catalog.ProductsByCategory)
			r.Get("/payment-methods", catalog.PaymentMethods)
			r.Get("/channels", catalog.Channels)
			r.Get("/cities", catalog.Cities)
			r.Get("/products/{id}/stock-movements", movements.ByProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.Create)
			r.Get("/", orders.GetAll)
			r.Get("/{id}", orders.GetByID)
			r.Patch("/{id}/status", orders.UpdateStatus)
			r.Get("/{id}/stock-movements", movements.ByOrder)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/dashboard", reports.Dashboard)
			r.Get("/revenue-by-day", reports.RevenueByDay)
			r.Get("/orders-by-day", reports.OrdersByDay)
			r.Get("/latest-orders", reports.LatestOrders)
		})
	})

	return r
}
