package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/floramar/flower-service/config"
	"github.com/floramar/flower-service/internal/repository"
)

// StorageComponents holds the snapshot store and backend handles that need
// lifecycle management.
type StorageComponents struct {
	Store repository.SnapshotStore
	Mongo *repository.MongoDB
	Redis *repository.RedisStore
}

// InitializeStorage creates the cart snapshot store for the configured
// backend. Returns nil when no backend could be set up; the service then
// runs with in-memory carts only, which is a degradation and not an error.
func InitializeStorage(cfg config.StorageConfig) *StorageComponents {
	switch cfg.Backend {
	case "mongo":
		db, err := repository.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without cart persistence")
			return nil
		}
		if err := db.EnsureCartTTL(context.Background(), cfg.CartTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set cart TTL index (may already exist)")
		}
		log.Info().Msg("Cart snapshots stored in MongoDB")
		return &StorageComponents{Store: repository.NewMongoStore(db), Mongo: db}

	case "redis":
		store, err := repository.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CartTTL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Redis - continuing without cart persistence")
			return nil
		}
		log.Info().Msg("Cart snapshots stored in Redis")
		return &StorageComponents{Store: store, Redis: store}

	case "file", "":
		store, err := repository.NewFileStore(cfg.FileDir)
		if err != nil {
			log.Error().Err(err).Str("dir", cfg.FileDir).Msg("Failed to open snapshot dir - continuing without cart persistence")
			return nil
		}
		log.Info().Str("dir", cfg.FileDir).Msg("Cart snapshots stored on disk")
		return &StorageComponents{Store: store}

	default:
		log.Error().Str("backend", cfg.Backend).Msg("Unknown storage backend - continuing without cart persistence")
		return nil
	}
}

// Close releases backend connections.
func (s *StorageComponents) Close(ctx context.Context) {
	if s == nil {
		return
	}
	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("MongoDB close failed")
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}
}
