package route

import (
	"context"
	"errors"
	"time"

	"harmony-backend/internal/database"
	"harmony-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Store struct {
	coll *mongo.Collection
}

func NewStore(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

func (s *Store) Create(ctx context.Context, r *models.Route) error {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	result, err := s.coll.InsertOne(ctx, r)
	if err != nil {
		return err
	}
	r.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (s *Store) List(ctx context.Context) ([]models.Route, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	roots := make([]models.Route, 0)
	if err := cursor.All(ctx, &roots); err != nil {
		return nil, err
	}
	return roots, nil
}

func (s *Store) GetByID(ctx context.Context, id bson.ObjectID) (*models.Route, error) {
	var r models.Route
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// Update replaces the mutable fields wholesale, refreshes updatedAt and
// returns the updated document.
func (s *Store) Update(ctx context.Context, id bson.ObjectID, p *Payload) (*models.Route, error) {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"address":     p.Address,
		"district":    p.District,
		"managerName": p.ManagerName,
		"phoneNumber": p.PhoneNumber,
		"hours":       p.Hours,
		"updatedAt":   time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var r models.Route
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&r)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *Store) Delete(ctx context.Context, id bson.ObjectID) error {
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return database.ErrNotFound
		}
		return err
	}
	return nil
}
