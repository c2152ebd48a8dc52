package route

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"harmony-backend/internal/database"
	"harmony-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Integration tests; they require a running MongoDB instance.
// Set MONGODB_URI in the environment before running them.

func newTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	coll := client.Database("harmony_test").Collection("roots")
	t.Cleanup(func() {
		_ = coll.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return NewStore(coll)
}

func testRoute() *models.Route {
	return &models.Route{
		Name:        "Kandy Service Route",
		Address:     "45 Temple Road",
		District:    "Kandy",
		ManagerName: "S. Fernando",
		PhoneNumber: "+94 81 223-4455",
		Hours:       "9am - 5pm",
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	r := testRoute()
	if err := store.Create(ctx, r); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if r.ID.IsZero() {
		t.Fatal("Create did not assign an ID")
	}
	if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
		t.Fatal("Create did not assign timestamps")
	}

	got, err := store.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ManagerName != r.ManagerName || got.PhoneNumber != r.PhoneNumber {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, r)
	}
}

func TestStoreUpdateRefreshesUpdatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	r := testRoute()
	if err := store.Create(ctx, r); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// stored timestamps are millisecond precision
	time.Sleep(10 * time.Millisecond)

	updated, err := store.Update(ctx, r.ID, &Payload{
		Name:        r.Name,
		Address:     r.Address,
		District:    r.District,
		ManagerName: "T. Bandara",
		PhoneNumber: "0812234455",
		Hours:       r.Hours,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ManagerName != "T. Bandara" {
		t.Errorf("ManagerName = %s, want T. Bandara", updated.ManagerName)
	}
	if !updated.UpdatedAt.After(r.UpdatedAt) {
		t.Errorf("UpdatedAt was not refreshed: %v <= %v", updated.UpdatedAt, r.UpdatedAt)
	}
}

func TestStoreDeleteThenGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	r := testRoute()
	if err := store.Create(ctx, r); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, r.ID); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("GetByID after delete = %v, want ErrNotFound", err)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetByID(context.Background(), bson.NewObjectID()); !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("GetByID on missing id = %v, want ErrNotFound", err)
	}
}
