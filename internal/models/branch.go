package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Branch is a physical office location shown on the branch lookup page.
type Branch struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Address   string        `json:"address" bson:"address"`
	District  string        `json:"district" bson:"district"`
	Phone     string        `json:"phone" bson:"phone"`
	Manager   string        `json:"manager" bson:"manager"`
	Hours     string        `json:"hours" bson:"hours"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
