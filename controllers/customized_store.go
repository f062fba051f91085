package controllers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourism-api/configs"
	"tourism-api/models"
)

// CustomizedStore is the persistence surface the custom tour request
// handlers depend on; tests plug in an in-memory fake.
type CustomizedStore interface {
	Insert(ctx context.Context, req *models.CustomTourRequest) error
	FindAll(ctx context.Context, limit, skip int64) ([]models.CustomTourRequest, error)
	FindByID(ctx context.Context, id string) (*models.CustomTourRequest, error)
	Update(ctx context.Context, id string, upd *models.CustomTourRequestUpdate) (*models.CustomTourRequest, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type mongoCustomizedStore struct{}

// NewMongoCustomizedStore returns the MongoDB-backed store used in
// production. The collection handle is resolved lazily so importing the
// package does not require a live connection.
func NewMongoCustomizedStore() CustomizedStore {
	return &mongoCustomizedStore{}
}

func (s *mongoCustomizedStore) collection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "customtourrequests")
}

func (s *mongoCustomizedStore) Insert(ctx context.Context, req *models.CustomTourRequest) error {
	now := time.Now()
	req.ID = primitive.NewObjectID()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := s.collection().InsertOne(ctx, req)
	return err
}

func (s *mongoCustomizedStore) FindAll(ctx context.Context, limit, skip int64) ([]models.CustomTourRequest, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	if skip > 0 {
		findOptions.SetSkip(skip)
	}

	cursor, err := s.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.CustomTourRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *mongoCustomizedStore) FindByID(ctx context.Context, id string) (*models.CustomTourRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An unparseable id can never match a document.
		return nil, models.ErrRequestNotFound
	}

	var req models.CustomTourRequest
	err = s.collection().FindOne(ctx, bson.M{"_id": objID}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *mongoCustomizedStore) Update(ctx context.Context, id string, upd *models.CustomTourRequestUpdate) (*models.CustomTourRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrRequestNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if upd.Customer != nil {
		set["customer"] = *upd.Customer
	}
	if upd.Country != nil {
		set["country"] = *upd.Country
	}
	if upd.Days != nil {
		set["days"] = *upd.Days
	}
	if upd.GroupSize != nil {
		set["groupSize"] = *upd.GroupSize
	}
	if upd.TravelPreferences != nil {
		set["travelPreferences"] = *upd.TravelPreferences
	}
	if upd.ShortDescription != nil {
		set["shortDescription"] = *upd.ShortDescription
	}
	if upd.Source != nil {
		set["source"] = *upd.Source
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.CustomTourRequest
	err = s.collection().FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *mongoCustomizedStore) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Nothing to match; the delete endpoint reports success regardless.
		return 0, nil
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
