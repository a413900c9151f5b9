package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/models"
)

func TestCatalogCategoriesHandler(t *testing.T) {
	env := newTestEnv()
	env.catalog.categories = []models.Category{
		{CategoryID: 1, Name: "Apparel"},
		{CategoryID: 2, Name: "Food & Beverage"},
	}

	rec := performJSON(env.router, http.MethodGet, "/api/catalog/categories", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Apparel", categories[0].Name)
}

func TestCatalogProductsByCategoryHandler(t *testing.T) {
	env := newTestEnv()
	env.catalog.products = []models.Product{
		{ProductID: 5, Name: "Krama Scarf", UnitPrice: 10.50, StockQuantity: 20},
	}

	rec := performJSON(env.router, http.MethodGet, "/api/catalog/categories/1/products", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, 10.50, products[0].UnitPrice)
}

func TestCatalogProductsBadCategoryID(t *testing.T) {
	env := newTestEnv()

	rec := performJSON(env.router, http.MethodGet, "/api/catalog/categories/abc/products", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEmptyListsSerializeAsArrays(t *testing.T) {
	env := newTestEnv()

	for _, path := range []string{
		"/api/catalog/categories",
		"/api/catalog/payment-methods",
		"/api/catalog/channels",
	} {
		rec := performJSON(env.router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.JSONEq(t, "[]", rec.Body.String(), "path %s", path)
	}
}

func TestCatalogCitiesHandler(t *testing.T) {
	env := newTestEnv()

	rec := performJSON(env.router, http.MethodGet, "/api/catalog/cities", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var cities []struct {
		Name       string `json:"name"`
		PostalCode string `json:"postal_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	require.NotEmpty(t, cities)

	found := false
	for _, c := range cities {
		if c.Name == "Phnom Penh" {
			found = true
			assert.Equal(t, "120101", c.PostalCode)
		}
	}
	assert.True(t, found, "Phnom Penh missing from city list")
}

func TestReportDashboardHandler(t *testing.T) {
	env := newTestEnv()
	env.reports.stats = &models.DashboardStats{
		TotalRevenue:   1234.56,
		TotalOrders:    10,
		TotalCustomers: 4,
		AvgOrderValue:  123.46,
		OrdersByStatus: map[string]int{models.StatusPending: 7, models.StatusShipped: 3},
	}

	rec := performJSON(env.router, http.MethodGet, "/api/reports/dashboard", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1234.56, stats.TotalRevenue)
	assert.Equal(t, 7, stats.OrdersByStatus[models.StatusPending])
}
