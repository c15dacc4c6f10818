package app

import (
	"github.com/gin-gonic/gin"

	"github.com/floramar/flower-service/config"
	"github.com/floramar/flower-service/internal/http"
	"github.com/floramar/flower-service/internal/repository"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, *StorageComponents) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	storage := InitializeStorage(cfg.Storage)
	services := InitializeServices(cfg, storeOf(storage))

	handlers := http.Handlers{
		Catalog:  http.NewCatalogHandler(services.Catalog),
		Cart:     http.NewCartHandler(services.Carts, services.Catalog),
		Checkout: http.NewCheckoutHandler(services.Carts, services.Formatter, cfg.Shop.WhatsAppPhone),
		Session:  http.NewSessionHandler(services.Sessions),
		Health:   buildHealthHandler(storage),
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		SessionRequired: cfg.Session.Required,
		SessionService:  services.Sessions,
	}

	return http.NewRouter(handlers, routerCfg), storage
}

// storeOf unwraps the snapshot store, tolerating absent storage.
func storeOf(storage *StorageComponents) repository.SnapshotStore {
	if storage == nil {
		return nil
	}
	return storage.Store
}

// buildHealthHandler registers dependency health checks for the configured
// storage backend.
func buildHealthHandler(storage *StorageComponents) *http.HealthHandler {
	healthHandler := http.NewHealthHandler()
	if storage != nil {
		if storage.Mongo != nil {
			healthHandler.RegisterChecker("mongodb", storage.Mongo)
		}
		if storage.Redis != nil {
			healthHandler.RegisterChecker("redis", storage.Redis)
		}
	}
	return healthHandler
}
