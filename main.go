package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"stoq/internal/config"
	"stoq/internal/database"
	"stoq/internal/handlers"
	"stoq/internal/middleware"
	"stoq/internal/repositories"
	"stoq/internal/services"
	"stoq/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Product lifecycle events are only published when a broker URL is
	// configured; the catalog works fine without one.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		// Drain our own queue so events do not pile up when no dedicated
		// consumer is deployed; the handler just logs each delivery.
		if err := mqClient.ConsumeProductEvents(rabbitmq.LogProductEvent); err != nil {
			log.Printf("Failed to start product event consumer: %v", err)
		}
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	productService := services.NewProductService(productRepo, publisher)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	apiV1 := app.Group("/api/v1")

	// Catalog and auth entry points are public.
	productHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)

	// Token-protected routes.
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protectedRoutes)

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped")
}
