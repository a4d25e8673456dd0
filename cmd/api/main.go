package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/techstore-mx/techstore-backend/api/controllers"
	"github.com/techstore-mx/techstore-backend/api/routes"
	authsvc "github.com/techstore-mx/techstore-backend/internal/auth"
	cartstore "github.com/techstore-mx/techstore-backend/internal/cart"
	categorysvc "github.com/techstore-mx/techstore-backend/internal/categories"
	ordersvc "github.com/techstore-mx/techstore-backend/internal/orders"
	productsvc "github.com/techstore-mx/techstore-backend/internal/products"
	"github.com/techstore-mx/techstore-backend/internal/seed"
	wishliststore "github.com/techstore-mx/techstore-backend/internal/wishlist"
	"github.com/techstore-mx/techstore-backend/pkg/config"
	"github.com/techstore-mx/techstore-backend/pkg/db"
	"github.com/techstore-mx/techstore-backend/pkg/kv"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
	"github.com/techstore-mx/techstore-backend/pkg/metrics"
	"github.com/techstore-mx/techstore-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	pingers := map[string]controllers.Pinger{}

	var productRepo productsvc.Repository
	var categoryRepo categorysvc.Repository
	var orderRepo ordersvc.Repository

	if cfg.DB.Driver == config.DBDriverMemory {
		now := time.Now().UTC()
		productRepo = productsvc.NewMemoryRepository(seed.Products(now))
		categoryRepo = categorysvc.NewMemoryRepository(seed.Categories(now))
		orderRepo = ordersvc.NewMemoryRepository(seed.Orders())
	} else {
		dbClient, err := db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()
		pingers["db"] = dbClient

		productRepo = productsvc.NewGormRepository(dbClient.DB())
		categoryRepo = categorysvc.NewGormRepository(dbClient.DB())
		orderRepo = ordersvc.NewGormRepository(dbClient.DB())
	}

	var kvBackend kv.Store
	if cfg.KV.Backend == config.KVBackendRedis {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		kvBackend = redisClient
	} else {
		kvBackend = kv.NewMemory()
	}
	pingers["kv"] = kvBackend

	productService, err := productsvc.NewService(productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}
	categoryService, err := categorysvc.NewService(categoryRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create categories service", err)
		os.Exit(1)
	}
	orderService, err := ordersvc.NewService(orderRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}
	authService, err := authsvc.NewService(kvBackend, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	cart, err := cartstore.NewStore(kvBackend, cfg.Cart, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	wishlist, err := wishliststore.NewStore(kvBackend, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist store", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":       cfg.App.Env,
		"addr":      addr,
		"db_driver": cfg.DB.Driver,
		"kv":        cfg.KV.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			registry,
			httpMetrics,
			pingers,
			productService,
			categoryService,
			orderService,
			authService,
			cart,
			wishlist,
		),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "error draining api server", err)
			os.Exit(1)
		}
	}
}
