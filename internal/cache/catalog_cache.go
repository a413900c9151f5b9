package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
)

const (
	keyCategories     = "catalog:categories"
	keyPaymentMethods = "catalog:payment_methods"
	keyChannels       = "catalog:channels"
)

// CachedCatalogRepository is a read-through cache over the catalog
// repository. Redis failures log and fall through to the database.
type CachedCatalogRepository struct {
	realRepo repository.CatalogRepository
	redis    *redis.Client
	ttl      time.Duration
	notTTL   time.Duration
}

func NewCachedCatalogRepository(realRepo repository.CatalogRepository, redis *redis.Client) *CachedCatalogRepository {
	return &CachedCatalogRepository{
		realRepo: realRepo,
		redis:    redis,
		ttl:      5 * time.Minute,
		notTTL:   1 * time.Minute,
	}
}

// get fills dst from the cache, reporting whether it hit.
func (c *CachedCatalogRepository) get(ctx context.Context, key string, dst any) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(data, dst); err != nil {
			slog.Warn("failed to unmarshal cached value, reading from database", "key", key, "error", err)
			return false
		}
		return true
	case errors.Is(err, redis.Nil):
		return false
	default:
		slog.Warn("redis error, reading from database", "key", key, "error", err)
		return false
	}
}

func (c *CachedCatalogRepository) set(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal value for cache", "key", key, "error", err)
		return
	}
	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Warn("failed to cache value", "key", key, "error", err)
	}
}

func (c *CachedCatalogRepository) Categories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if c.get(ctx, keyCategories, &cached) {
		return cached, nil
	}

	categories, err := c.realRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, keyCategories, categories, c.ttl)
	return categories, nil
}

func (c *CachedCatalogRepository) ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	key := fmt.Sprintf("products:category:%d", categoryID)

	var cached []models.Product
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	products, err := c.realRepo.ProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, products, c.ttl)
	return products, nil
}

func (c *CachedCatalogRepository) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	key := fmt.Sprintf("product:%d", id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == "notfound" {
			return nil, repository.ErrNotFound
		}
		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			slog.Warn("failed to unmarshal cached product, reading from database", "error", err)
			break
		}
		return &product, nil
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("redis error, reading from database", "error", err)
	}

	product, err := c.realRepo.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if setErr := c.redis.Set(ctx, key, "notfound", c.notTTL).Err(); setErr != nil {
				slog.Warn("failed to cache notfound", "key", key, "error", setErr)
			}
		}
		return nil, err
	}

	c.set(ctx, key, product, c.ttl)
	return product, nil
}

func (c *CachedCatalogRepository) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var cached []models.PaymentMethod
	if c.get(ctx, keyPaymentMethods, &cached) {
		return cached, nil
	}

	methods, err := c.realRepo.PaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, keyPaymentMethods, methods, c.ttl)
	return methods, nil
}

func (c *CachedCatalogRepository) Channels(ctx context.Context) ([]models.Channel, error) {
	var cached []models.Channel
	if c.get(ctx, keyChannels, &cached) {
		return cached, nil
	}

	channels, err := c.realRepo.Channels(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, keyChannels, channels, c.ttl)
	return channels, nil
}

// InvalidateProducts drops every cached product entry. Called after an
// order commits, since stock counts have changed.
func (c *CachedCatalogRepository) InvalidateProducts(ctx context.Context) {
	for _, pattern := range []string{"product:*", "products:category:*"} {
		iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := c.redis.Del(ctx, iter.Val()).Err(); err != nil {
				slog.Warn("failed to delete cached key", "key", iter.Val(), "error", err)
			}
		}
		if err := iter.Err(); err != nil {
			slog.Warn("failed to scan cache keys", "pattern", pattern, "error", err)
		}
	}
}
