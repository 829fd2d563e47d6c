package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	orderAPI "github.com/lojadosgeeks/catalog-api/internal/order/api"
	orderRepo "github.com/lojadosgeeks/catalog-api/internal/order/repository"
	orderService "github.com/lojadosgeeks/catalog-api/internal/order/service"
	"github.com/lojadosgeeks/catalog-api/internal/platform/config"
	"github.com/lojadosgeeks/catalog-api/internal/platform/database"
	"github.com/lojadosgeeks/catalog-api/internal/platform/logger"
	productAPI "github.com/lojadosgeeks/catalog-api/internal/product/api"
	productRepo "github.com/lojadosgeeks/catalog-api/internal/product/repository"
	productService "github.com/lojadosgeeks/catalog-api/internal/product/service"
)

func main() {
	// Load .env before any config read; absence is fine in deployment.
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, reading configuration from environment")
	}

	mongoCfg := config.LoadMongoConfig()
	serverCfg := config.LoadServerConfig("8000")
	corsCfg := config.LoadCORSConfig()

	logger.Info("Starting Catalog & Order Service...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Setup Database
	client, err := database.Connect(ctx, mongoCfg.URI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB for Catalog & Order Service", err)
		return
	}
	defer database.Disconnect(client)

	db := client.Database(mongoCfg.Database)

	// Setup Dependencies
	prodRepository := productRepo.NewMongoProductRepository(db)
	prodService := productService.NewProductService(prodRepository)
	productHandler := productAPI.NewProductHandler(prodService)

	ordRepository := orderRepo.NewMongoOrderRepository(db)
	ordService := orderService.NewOrderService(ordRepository)
	orderHandler := orderAPI.NewOrderHandler(ordService)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(cors.New(corsConfig(corsCfg)))

	api := router.Group("/api")
	productHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	server := &http.Server{
		Addr:    serverCfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Catalog & Order Service running on port " + serverCfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to run Catalog & Order Service server", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping server...")

	shutdownTimeout := time.Duration(config.GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", err)
	}
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	return corsCfg
}
