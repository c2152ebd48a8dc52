package auth

import (
	"context"
	"errors"
	"time"

	"harmony-backend/internal/database"
	"harmony-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ErrAdminExists is returned when a signup collides with the unique email index.
var ErrAdminExists = errors.New("admin already exists")

type AdminStore struct {
	coll *mongo.Collection
}

func NewAdminStore(coll *mongo.Collection) *AdminStore {
	return &AdminStore{coll: coll}
}

func (s *AdminStore) Create(ctx context.Context, email, passwordHash string) (*models.Admin, error) {
	admin := &models.Admin{
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}

	result, err := s.coll.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAdminExists
		}
		return nil, err
	}

	admin.ID = result.InsertedID.(bson.ObjectID)
	return admin, nil
}

func (s *AdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) GetByID(ctx context.Context, id bson.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *AdminStore) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}
