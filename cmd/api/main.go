package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/quickbite-app/quickbite-backend/api/routes"
	"github.com/quickbite-app/quickbite-backend/internal/catalog"
	checkoutsvc "github.com/quickbite-app/quickbite-backend/internal/checkout"
	"github.com/quickbite-app/quickbite-backend/internal/orders"
	"github.com/quickbite-app/quickbite-backend/internal/sessions"
	"github.com/quickbite-app/quickbite-backend/pkg/config"
	"github.com/quickbite-app/quickbite-backend/pkg/logger"
	"github.com/quickbite-app/quickbite-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "quickbite"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "quickbite",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	menu, err := catalog.NewRepository(catalog.FixtureItems(), catalog.FixtureCategories(), catalog.FixturePromotions())
	if err != nil {
		logg.Error(context.Background(), "failed to load menu catalog", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(orders.FixtureOrders(menu))

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.NewCalculator(cfg.Pricing), ordersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	registry := sessions.NewRegistry()

	promRegistry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, menu, registry, checkoutService, ordersRepo, httpMetrics, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
