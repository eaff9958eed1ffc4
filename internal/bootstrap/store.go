// Package bootstrap opens the repositories selected by configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/ArowuTest/blood-donation-backend/internal/config"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/blood-donation-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/blood-donation-backend/pkg/mongodb"
	"go.uber.org/zap"
)

// OpenStore connects the configured store driver. For MongoDB it also
// reconciles indexes, so the unique donor email index exists before the
// first request is served.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return memory.NewStore(), nil

	case config.DriverMongoDB:
		client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.ConnectTimeout)
		if err != nil {
			return repositories.Store{}, fmt.Errorf("connect to mongodb: %w", err)
		}
		db := client.Database(cfg.MongoDB.Database)

		if err := mongorepo.EnsureIndexes(ctx, db, logger); err != nil {
			_ = client.Disconnect(context.Background())
			return repositories.Store{}, fmt.Errorf("ensure indexes: %w", err)
		}

		logger.Info("connected to mongodb", zap.String("database", cfg.MongoDB.Database))
		return mongorepo.NewStore(db), nil

	default:
		return repositories.Store{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
