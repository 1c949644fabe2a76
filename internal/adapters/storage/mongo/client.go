package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	ErrNotConfigured = errors.New("mongo: uri is empty")
)

// Connect abre el cliente y hace ping. Sin conectividad => error (fatal en setup).
func Connect(ctx context.Context, uri string, timeout time.Duration) (*driver.Client, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	client, err := driver.Connect(options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	return client, nil
}
