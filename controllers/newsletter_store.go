package controllers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourism-api/configs"
	"tourism-api/models"
)

// NewsletterStore is the persistence surface behind the newsletter
// handlers; tests plug in an in-memory fake.
type NewsletterStore interface {
	FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	Insert(ctx context.Context, sub *models.NewsletterSubscriber) error
	Reactivate(ctx context.Context, id primitive.ObjectID) error
	DeactivateByToken(ctx context.Context, token string) (bool, error)
	FindAll(ctx context.Context, limit, skip int64) ([]models.NewsletterSubscriber, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type mongoNewsletterStore struct{}

func NewMongoNewsletterStore() NewsletterStore {
	return &mongoNewsletterStore{}
}

func (s *mongoNewsletterStore) collection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "newslettersubscribers")
}

func (s *mongoNewsletterStore) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := s.collection().FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrSubscriberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *mongoNewsletterStore) Insert(ctx context.Context, sub *models.NewsletterSubscriber) error {
	_, err := s.collection().InsertOne(ctx, sub)
	return err
}

// Reactivate flips an unsubscribed address back on; the token is kept so
// previously issued unsubscribe links stay valid.
func (s *mongoNewsletterStore) Reactivate(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"active": true, "subscribedAt": time.Now()}}
	_, err := s.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (s *mongoNewsletterStore) DeactivateByToken(ctx context.Context, token string) (bool, error) {
	result, err := s.collection().UpdateOne(ctx,
		bson.M{"token": token},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (s *mongoNewsletterStore) FindAll(ctx context.Context, limit, skip int64) ([]models.NewsletterSubscriber, error) {
	findOptions := rangeFindOptions(limit, skip, "subscribedAt")
	cursor, err := s.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscribers []models.NewsletterSubscriber
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (s *mongoNewsletterStore) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
