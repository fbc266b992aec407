package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewClient connects to MongoDB and verifies the connection with a ping.
// The client carries the UUID registry so every collection it hands out
// encodes uuid.UUID the same way.
func NewClient(ctx context.Context, uri string, connectTimeout time.Duration, rep UUIDRepresentation) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetRegistry(NewRegistry(rep))
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// CollectionOptions returns options binding a collection to the UUID registry.
func CollectionOptions(rep UUIDRepresentation) *options.CollectionOptions {
	return options.Collection().SetRegistry(NewRegistry(rep))
}
