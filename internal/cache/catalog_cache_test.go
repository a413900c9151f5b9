package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/internal/cache"
	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
)

type countingCatalogRepo struct {
	calls      map[string]int
	categories []models.Category
	products   []models.Product
	product    *models.Product
	productErr error
}

func newCountingCatalogRepo() *countingCatalogRepo {
	return &countingCatalogRepo{calls: map[string]int{}}
}

func (r *countingCatalogRepo) Categories(context.Context) ([]models.Category, error) {
	r.calls["categories"]++
	return r.categories, nil
}

func (r *countingCatalogRepo) ProductsByCategory(context.Context, int) ([]models.Product, error) {
	r.calls["products"]++
	return r.products, nil
}

func (r *countingCatalogRepo) ProductByID(context.Context, int) (*models.Product, error) {
	r.calls["product"]++
	if r.productErr != nil {
		return nil, r.productErr
	}
	return r.product, nil
}

func (r *countingCatalogRepo) PaymentMethods(context.Context) ([]models.PaymentMethod, error) {
	r.calls["methods"]++
	return nil, nil
}

func (r *countingCatalogRepo) Channels(context.Context) ([]models.Channel, error) {
	r.calls["channels"]++
	return nil, nil
}

func newCachedRepo(t *testing.T) (*cache.CachedCatalogRepository, *countingCatalogRepo, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	real := newCountingCatalogRepo()
	return cache.NewCachedCatalogRepository(real, client), real, srv
}

func TestCategoriesCachedAfterFirstRead(t *testing.T) {
	cached, real, _ := newCachedRepo(t)
	real.categories = []models.Category{{CategoryID: 1, Name: "Apparel"}}

	ctx := context.Background()

	first, err := cached.Categories(ctx)
	require.NoError(t, err)
	second, err := cached.Categories(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, real.calls["categories"], "second read should come from the cache")
}

func TestProductByIDNegativeCaching(t *testing.T) {
	cached, real, _ := newCachedRepo(t)
	real.productErr = repository.ErrNotFound

	ctx := context.Background()

	_, err := cached.ProductByID(ctx, 7)
	require.ErrorIs(t, err, repository.ErrNotFound)
	_, err = cached.ProductByID(ctx, 7)
	require.ErrorIs(t, err, repository.ErrNotFound)

	assert.Equal(t, 1, real.calls["product"], "missing product should be cached too")
}

func TestInvalidateProductsDropsProductKeysOnly(t *testing.T) {
	cached, real, srv := newCachedRepo(t)
	real.categories = []models.Category{{CategoryID: 1, Name: "Apparel"}}
	real.products = []models.Product{{ProductID: 5, Name: "Krama Scarf", StockQuantity: 20}}
	real.product = &models.Product{ProductID: 5, Name: "Krama Scarf", StockQuantity: 20}

	ctx := context.Background()

	_, err := cached.Categories(ctx)
	require.NoError(t, err)
	_, err = cached.ProductsByCategory(ctx, 1)
	require.NoError(t, err)
	_, err = cached.ProductByID(ctx, 5)
	require.NoError(t, err)

	cached.InvalidateProducts(ctx)

	assert.False(t, srv.Exists("product:5"))
	assert.False(t, srv.Exists("products:category:1"))
	assert.True(t, srv.Exists("catalog:categories"), "reference data survives invalidation")

	// Next product read goes back to the database.
	_, err = cached.ProductsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, real.calls["products"])
}

func TestRedisDownFallsThroughToDatabase(t *testing.T) {
	cached, real, srv := newCachedRepo(t)
	real.categories = []models.Category{{CategoryID: 1, Name: "Apparel"}}

	srv.Close()

	categories, err := cached.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, 1, real.calls["categories"])
}
