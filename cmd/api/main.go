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

	"github.com/gin-gonic/gin"
	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/infrastructure/database"
	"github.com/sangkips/marketplace-api/internal/infrastructure/repository"
	"github.com/sangkips/marketplace-api/internal/presentation/http/handler"
	"github.com/sangkips/marketplace-api/internal/presentation/http/routes"
	"github.com/sangkips/marketplace-api/pkg/email"
	"github.com/sangkips/marketplace-api/pkg/utils"
)

func newLogger(cfg config.AppConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newSellerNotifier(cfg config.EmailConfig) service.SellerNotifier {
	emailCfg := email.Config{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUsername: cfg.SMTPUsername,
		SMTPPassword: cfg.SMTPPassword,
		FromName:     cfg.FromName,
		FromEmail:    cfg.FromEmail,
		SellerURL:    cfg.SellerURL,
	}
	if !emailCfg.Enabled() {
		slog.Info("smtp not configured, seller notifications disabled")
		return nil
	}
	return email.NewNotifier(emailCfg)
}

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.AutoMigrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiryHours)

	userRepo := repository.NewUserRepository(db)
	if err := database.SeedAdmin(ctx, userRepo, cfg.Admin); err != nil {
		slog.Warn("failed to seed admin user", "error", err)
	}

	sellerRepo := repository.NewSellerRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	sellerService := service.NewSellerService(sellerRepo)
	shopService := service.NewShopService(productRepo, categoryRepo, userRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	sellerOrderService := service.NewSellerOrderService(orderRepo)
	shopOrderService := service.NewShopOrderService(orderRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	adminService := service.NewAdminService(userRepo, sellerRepo, newSellerNotifier(cfg.Email))
	analyticsService := service.NewAnalyticsService(analyticsRepo, userRepo, productRepo, sellerRepo, orderRepo, cfg.Analytics)

	handlers := &routes.Handlers{
		Shop:   handler.NewShopHandler(shopService, shopOrderService, reviewService),
		Seller: handler.NewSellerHandler(sellerService, catalogService, sellerOrderService, analyticsService, reviewService),
		Admin:  handler.NewAdminHandler(adminService, analyticsService),
	}

	router := routes.Setup(ctx, handlers, &routes.Deps{
		JWTManager: jwtManager,
		Sellers:    sellerService,
		Cfg:        cfg,
		Logger:     logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "name", cfg.App.Name, "port", port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
