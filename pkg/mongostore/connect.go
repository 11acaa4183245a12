package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrFailedToConnect indicates no connection attempt succeeded
var ErrFailedToConnect = errors.New("mongostore.failed_to_connect")

// Config describes the MongoDB connection used by the session store.
type Config struct {
	ConnectionURL  string        `env:"AUTHTOKEN_MONGODB_URL,required"`
	Database       string        `env:"AUTHTOKEN_MONGODB_DATABASE" envDefault:"authtoken"`
	Collection     string        `env:"AUTHTOKEN_MONGODB_COLLECTION" envDefault:"sessions"`
	ConnectTimeout time.Duration `env:"AUTHTOKEN_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	RetryAttempts  int           `env:"AUTHTOKEN_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"AUTHTOKEN_MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// Connect establishes a MongoDB connection and returns the configured
// database handle, retrying per the config.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, error) {
	for attempt := 0; attempt < cfg.RetryAttempts; attempt++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client.Database(cfg.Database), nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnect, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnect
}
