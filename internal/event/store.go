package event

import (
	"context"
	"errors"

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

func (s *Store) Create(ctx context.Context, e *models.Event) error {
	result, err := s.coll.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	e.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) GetByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var e models.Event
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *Store) Update(ctx context.Context, id bson.ObjectID, p *Payload) (*models.Event, error) {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"date":        p.Date,
		"image":       p.Image,
		"description": p.Description,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var e models.Event
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
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
