package database

import (
	"context"
	"os"
	"testing"

	"harmony-backend/internal/config"
)

// Integration test; requires a running MongoDB instance.
// Set MONGODB_URI in the environment before running it.

func TestConnectAndEnsureIndexes(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	cfg := &config.Config{MongoURI: uri, MongoDatabase: "harmony_test"}

	c, err := Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() {
		_ = c.Admins().Drop(context.Background())
		_ = c.Close(context.Background())
	}()

	if err := c.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
}
