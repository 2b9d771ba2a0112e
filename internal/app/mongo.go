package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sadumina/CarbonXinsight/config"
)

// mongoConnector is an indirection for unit testing; defaults to the real
// driver connect.
var mongoConnector = func(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

// InitMongo connects to the document store using the provided
// configuration and verifies connectivity with a ping.
//
// Returns:
//   - *mongo.Client: connected client (safe for concurrent use).
//   - error: if connecting or pinging fails.
func InitMongo(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongoConnector(connectCtx, cfg.Mongo.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}
