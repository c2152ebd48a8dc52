package database

import (
	"context"
	"fmt"
	"time"

	"harmony-backend/internal/config"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Client wraps the MongoDB connection and exposes the collections the
// service uses. Document identity is owned entirely by the store; the
// service keeps no state between requests.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg *config.Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.MongoDatabase),
	}, nil
}

func (c *Client) Contacts() *mongo.Collection { return c.db.Collection("contacts") }
func (c *Client) Branches() *mongo.Collection { return c.db.Collection("branches") }
func (c *Client) Roots() *mongo.Collection    { return c.db.Collection("roots") }
func (c *Client) Events() *mongo.Collection   { return c.db.Collection("events") }
func (c *Client) Admins() *mongo.Collection   { return c.db.Collection("admins") }

// EnsureIndexes creates the unique index that backs admin email uniqueness.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.Admins().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create admins email index: %w", err)
	}
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
