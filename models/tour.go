package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Tour struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Country    string             `bson:"country" json:"country"`
	Days       int                `bson:"days" json:"days"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
	Summary    string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Highlights []string           `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Images     []string           `bson:"images,omitempty" json:"images,omitempty"`
	Featured   bool               `bson:"featured" json:"featured"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
