package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-backend/internal/api/handlers"
	"ecommerce-backend/internal/cache"
	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/database"
	"ecommerce-backend/internal/repository"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	customerRepo := repository.NewCustomerRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	movementRepo := repository.NewStockMovementRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	catalog := catalogRepo
	var invalidator handlers.ProductInvalidator
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			slog.Error("failed to connect redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()

		cached := cache.NewCachedCatalogRepository(catalogRepo, rdb)
		catalog = cached
		invalidator = cached
	} else {
		slog.Info("REDIS_ADDR not set, catalog cache disabled")
	}

	router := handlers.NewRouter(
		handlers.NewCustomerHandler(customerRepo),
		handlers.NewCatalogHandler(catalog),
		handlers.NewOrderHandler(orderRepo, invalidator),
		handlers.NewStockMovementHandler(movementRepo),
		handlers.NewReportHandler(reportRepo),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
}
