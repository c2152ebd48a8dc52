package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Admin is a back-office account. Password holds the bcrypt hash and is
// never serialized in responses.
type Admin struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string        `json:"email" bson:"email"`
	Password  string        `json:"-" bson:"password"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
