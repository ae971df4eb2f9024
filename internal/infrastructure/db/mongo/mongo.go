package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecomfire/storefront-api/internal/infrastructure/config"
)

// defaultTimeout bounds the initial dial as well as every repository call.
const defaultTimeout = 10 * time.Second

// Connect opens the storefront database holding the products, credentials,
// and user (role document) collections. The connection is verified with a
// ping before anything is handed out; a backend that cannot reach its catalog
// should fail at boot, not on the first request.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Bootstrap ensures the indexes the storefront queries depend on: the unique
// email index on credentials and the sellerId/category indexes on products.
// Index creation is idempotent, so Bootstrap is safe to run on every boot.
func Bootstrap(ctx context.Context, db *mongo.Database) error {
	if err := NewCatalogRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("catalog indexes: %w", err)
	}
	if err := NewIdentityRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("identity indexes: %w", err)
	}
	return nil
}
