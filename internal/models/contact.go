package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactMessage is a message submitted through the public contact form.
// Messages are immutable once stored; there is no update endpoint.
type ContactMessage struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Subject   string        `json:"subject" bson:"subject"`
	Message   string        `json:"message" bson:"message"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
