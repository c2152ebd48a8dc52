package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Event is a promotional event shown on the marketing pages. Image holds
// either a URL or an inline data blob string; Date is stored as given.
type Event struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Date        string        `json:"date" bson:"date"`
	Image       string        `json:"image" bson:"image"`
	Description string        `json:"description" bson:"description"`
}
