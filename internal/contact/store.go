package contact

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

func (s *Store) Create(ctx context.Context, m *models.ContactMessage) error {
	m.CreatedAt = time.Now()

	result, err := s.coll.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// List returns all messages, newest first.
func (s *Store) List(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	messages := make([]models.ContactMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Store) GetByID(ctx context.Context, id bson.ObjectID) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
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
