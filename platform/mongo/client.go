// Package mongo opens the process-wide MongoDB client.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const defaultPingTimeout = 10 * time.Second

var ErrEmptyURI = errors.New("mongo uri is empty")

// Connect creates a client for uri and pings the primary. The client is
// safe for concurrent use and is meant to be shared for the process lifetime.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	const op = "mongo.Connect"

	if uri == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyURI)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: create client: %w", op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return client, nil
}
