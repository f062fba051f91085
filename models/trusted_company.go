package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrustedCompany struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Logo      string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
