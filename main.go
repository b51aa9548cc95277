package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealkit/internal/config"
	"mealkit/internal/database"
	"mealkit/internal/handlers"
	"mealkit/internal/logger"
	"mealkit/internal/metrics"
	"mealkit/internal/middleware"
	"mealkit/internal/repositories"
	"mealkit/internal/services"
	"mealkit/pkg/rabbitmq"
)

// NewApp builds the Fiber app with every route wired. publisher may be nil,
// in which case order events are not emitted.
func NewApp(cfg *config.Config, db *gorm.DB, zl *zap.Logger, publisher services.EventPublisher) *fiber.App {
	m := metrics.New()

	// --- Repositories ---
	recipeRepo := repositories.NewGORMRecipeRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, zl)
	catalogService := services.NewCatalogService(recipeRepo, categoryRepo)
	cartService := services.NewCartService(cartRepo, recipeRepo, m, zl)
	orderService := services.NewOrderService(orderRepo, recipeRepo, cartRepo,
		repositories.NewGORMTransactor(db), publisher, m, zl)

	app := fiber.New(fiber.Config{
		AppName:               "mealkit",
		DisableStartupMessage: cfg.IsProduction(),
	})

	// --- Middleware ---
	app.Use(logger.RequestID())
	app.Use(logger.Requests(zl))
	app.Use(m.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		code, status, dbStatus := fiber.StatusOK, "healthy", "connected"
		if err := database.Ping(db); err != nil {
			logger.FromCtx(c.UserContext(), zl).Warn("database ping failed", zap.Error(err))
			code, status, dbStatus = fiber.StatusServiceUnavailable, "unhealthy", "unreachable"
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
			"events":   publisher != nil,
		})
	})
	app.Get("/metrics", m.Handler())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService, zl).RegisterRoutes(apiV1)
	handlers.NewCatalogHandler(catalogService, zl).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService, zl))
	handlers.NewCartHandler(cartService, zl).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService, zl).RegisterRoutes(protected)

	return app
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zl.Fatal("failed to migrate database", zap.Error(err))
	}
	if cfg.SeedCatalog {
		if err := database.SeedCatalog(context.Background(), db); err != nil {
			zl.Fatal("failed to seed catalog", zap.Error(err))
		}
		zl.Info("catalog seeded")
	}

	// --- RabbitMQ ---
	var publisher services.EventPublisher
	if cfg.EventsEnabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, zl)
		if err != nil {
			zl.Warn("RabbitMQ unavailable, order events disabled", zap.Error(err))
		} else {
			defer mqClient.Close()
			publisher = mqClient
			if err := mqClient.ConsumeOrderEvents(rabbitmq.LogOrderEvents(zl)); err != nil {
				zl.Warn("failed to start order event consumer", zap.Error(err))
			}
		}
	}

	app := NewApp(cfg, db, zl, publisher)

	go func() {
		zl.Info("starting server", zap.String("addr", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			zl.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zl.Error("error during Fiber shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zl.Info("server gracefully stopped")
}
