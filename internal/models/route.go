package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Route is a secondary location/service-route listing. It mirrors Branch with
// different field names (managerName/phoneNumber) and carries both timestamps.
type Route struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Address     string        `json:"address" bson:"address"`
	District    string        `json:"district" bson:"district"`
	ManagerName string        `json:"managerName" bson:"managerName"`
	PhoneNumber string        `json:"phoneNumber" bson:"phoneNumber"`
	Hours       string        `json:"hours" bson:"hours"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}
