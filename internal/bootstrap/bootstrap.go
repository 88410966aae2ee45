package bootstrap

import (
	"context"
	"fmt"

	"marketplace-server/internal/config"
	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	analyticsHandler "marketplace-server/internal/analytics/handler"
	analyticsProcessor "marketplace-server/internal/analytics/processor"
	authHandler "marketplace-server/internal/auth/handler"
	authProcessor "marketplace-server/internal/auth/processor"
	redisClient "marketplace-server/internal/clients/redis"
	productsHandler "marketplace-server/internal/products/handler"
	productsProcessor "marketplace-server/internal/products/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Clients
	RedisClient *redisClient.Client

	// Handlers
	AuthHandler      authHandler.Handler
	AnalyticsHandler analyticsHandler.Handler
	ProductsHandler  productsHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Optional roll-up cache; nil when disabled.
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	auth := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(auth, logger)

	analytics := analyticsProcessor.New(&deps.Store, &deps.Store, deps.RedisClient, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analytics, logger)

	products := productsProcessor.New(&deps.Store, logger)
	deps.ProductsHandler = productsHandler.New(products, logger)

	return deps, nil
}

// Cleanup releases client connections on shutdown.
func (d *Dependencies) Cleanup() {
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis client", err)
	}
}
