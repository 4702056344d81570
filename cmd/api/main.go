package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/restaurantelilica/cardapio-backend/api/routes"
	"github.com/restaurantelilica/cardapio-backend/data"
	"github.com/restaurantelilica/cardapio-backend/internal/cart"
	"github.com/restaurantelilica/cardapio-backend/internal/leads"
	"github.com/restaurantelilica/cardapio-backend/internal/menu"
	"github.com/restaurantelilica/cardapio-backend/internal/sheets"
	"github.com/restaurantelilica/cardapio-backend/internal/siteconfig"
	"github.com/restaurantelilica/cardapio-backend/pkg/config"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
	"github.com/restaurantelilica/cardapio-backend/pkg/metrics"
	"github.com/restaurantelilica/cardapio-backend/pkg/redis"
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

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	sheetMetrics := metrics.NewSheetLoadMetrics(registry)

	fetcher := sheets.NewClient(cfg.Sheets.FetchTimeout)

	menuSvc, err := menu.NewService(menu.ServiceParams{
		Fetcher:     fetcher,
		URL:         cfg.Sheets.MenuURL,
		FallbackCSV: data.FallbackMenuCSV,
		TTL:         cfg.Sheets.MenuTTL,
		Logger:      logg,
		Metrics:     sheetMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	configSvc, err := siteconfig.NewService(siteconfig.ServiceParams{
		Fetcher:             fetcher,
		ConfigURL:           cfg.Sheets.ConfigURL,
		FeaturesURL:         cfg.Sheets.FeaturesURL,
		FallbackConfigCSV:   data.FallbackConfigCSV,
		FallbackFeaturesCSV: data.FallbackFeaturesCSV,
		TTL:                 cfg.Sheets.ConfigTTL,
		Logger:              logg,
		Metrics:             sheetMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create site config service", err)
		os.Exit(1)
	}

	var cartStore cart.Store = cart.NewMemoryStore()
	var redisPinger redis.Pinger
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		store, err := cart.NewRedisStore(redisClient, cfg.Cart.SessionTTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create cart store", err)
			os.Exit(1)
		}
		cartStore = store
		redisPinger = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, cart sessions are memory-only")
	}

	cartSvc := cart.NewService(cartStore, logg)

	webhookClient, err := leads.NewWebhookClient(cfg.Webhook.URL, cfg.Webhook.Timeout)
	if err != nil {
		logg.Error(context.Background(), "failed to create lead webhook client", err)
		os.Exit(1)
	}
	leadParams := leads.ServiceParams{
		Webhook: webhookClient,
		Source:  cfg.Leads.Source,
		Logger:  logg,
	}
	if cfg.Leads.SheetAppendURL != "" {
		sheetAppend, err := leads.NewSheetAppendClient(cfg.Leads.SheetAppendURL, cfg.Leads.Timeout)
		if err != nil {
			logg.Error(context.Background(), "failed to create lead sheet append client", err)
			os.Exit(1)
		}
		leadParams.SheetAppend = sheetAppend
	}
	leadSvc, err := leads.NewService(leadParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create lead service", err)
		os.Exit(1)
	}

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
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, redisPinger, registry, routes.Services{
			Menu:       menuSvc,
			SiteConfig: configSvc,
			Cart:       cartSvc,
			Leads:      leadSvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
