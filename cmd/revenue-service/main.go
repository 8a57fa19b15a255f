package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/config"
	httpdelivery "github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/delivery/http/handlers"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/kafka"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/metrics"
	migraterunner "github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/migrate"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/repository"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.RevenueDB.MigrationsPath != "" {
		if err := migraterunner.RunMigrations(db, cfg.RevenueDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	adminRepo := repository.NewDefaultAdminRepository(db)
	earningsRepo := repository.NewDefaultEarningsRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)

	// Init prometheus collectors
	revenueMetrics := metrics.NewRevenueMetrics()

	// Init kafka publisher
	var publisher domain.EventPublisher
	if cfg.KafkaService.Enabled {
		publisher = kafka.NewDefaultKafkaPublisher([]string{
			fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port),
		})
	}

	// Init pricing usecase
	pricingUsecase := usecase.NewDefaultPricingUsecase(cfg.Pricing.ToDomain(), adminRepo, nil)
	// Init distribution usecase
	distributionUsecase, err := usecase.NewDefaultDistributionUsecase(cfg.Distribution.ToDomain(), cfg.Distribution.Default)
	if err != nil {
		log.Fatalf("failed to init distribution usecase: %v", err)
	}
	// Init payout usecase
	payoutUsecase := usecase.NewDefaultPayoutUsecase(adminRepo, payoutRepo, publisher, revenueMetrics)
	// Init directory usecase
	directoryUsecase, err := usecase.NewDefaultDirectoryUsecase(adminRepo)
	if err != nil {
		log.Fatalf("failed to init directory usecase: %v", err)
	}
	// Init ledger usecase
	ledgerUsecase := usecase.NewDefaultLedgerUsecase(earningsRepo, adminRepo)

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Pricing:   handlers.NewPricingHandler(pricingUsecase, revenueMetrics),
		Payout:    handlers.NewPayoutHandler(distributionUsecase, payoutUsecase, revenueMetrics),
		Admin:     handlers.NewAdminHandler(directoryUsecase, revenueMetrics),
		Ledger:    handlers.NewLedgerHandler(ledgerUsecase),
		Directory: directoryUsecase,
		JWTSecret: cfg.Auth.JWTSecret,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("revenue service started on %s\n", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.RevenueConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
