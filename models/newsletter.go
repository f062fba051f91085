package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrSubscriberNotFound = errors.New("newsletter subscriber not found")

// NewsletterSubscriber holds one mailing-list entry. Token is the opaque
// value embedded in unsubscribe links.
type NewsletterSubscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Token        string             `bson:"token" json:"token"`
	Active       bool               `bson:"active" json:"active"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
}
