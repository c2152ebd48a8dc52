package branch

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

func (s *Store) Create(ctx context.Context, b *models.Branch) error {
	b.CreatedAt = time.Now()

	result, err := s.coll.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	b.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (s *Store) List(ctx context.Context) ([]models.Branch, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	branches := make([]models.Branch, 0)
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (s *Store) GetByID(ctx context.Context, id bson.ObjectID) (*models.Branch, error) {
	var b models.Branch
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Update replaces the mutable fields wholesale and returns the updated document.
func (s *Store) Update(ctx context.Context, id bson.ObjectID, p *Payload) (*models.Branch, error) {
	update := bson.M{"$set": bson.M{
		"name":     p.Name,
		"address":  p.Address,
		"district": p.District,
		"phone":    p.Phone,
		"manager":  p.Manager,
		"hours":    p.Hours,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Branch
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
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
