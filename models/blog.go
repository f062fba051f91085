package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Author     string             `bson:"author,omitempty" json:"author,omitempty"`
	Excerpt    string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content    string             `bson:"content" json:"content"`
	Tags       []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Published  bool               `bson:"published" json:"published"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
