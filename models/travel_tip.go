package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TravelTip struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
