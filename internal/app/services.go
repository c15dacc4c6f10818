// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/floramar/flower-service/config"
	"github.com/floramar/flower-service/internal/repository"
	"github.com/floramar/flower-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog   service.CatalogProvider
	Carts     service.CartStore
	Formatter service.OrderFormatter
	Sessions  *service.SessionService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config, snapshots repository.SnapshotStore) *ServiceComponents {
	catalog := service.DefaultCatalog
	if cfg.Catalog.FilePath != "" {
		loaded, err := service.LoadCatalogFile(cfg.Catalog.FilePath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Catalog.FilePath).Msg("Failed to load catalog file, using built-in catalog")
		} else {
			catalog = loaded
		}
	}

	var cartOpts []service.CartOption
	if snapshots != nil {
		cartOpts = append(cartOpts, service.WithSnapshotStore(snapshots))
	}

	return &ServiceComponents{
		Catalog:   service.NewCatalogService(catalog),
		Carts:     service.NewCartService(cartOpts...),
		Formatter: service.NewMessageFormatter(cfg.Shop.CountryPrefix),
		Sessions:  service.NewSessionService(cfg.Session.Secret, cfg.Session.TTL),
	}
}
