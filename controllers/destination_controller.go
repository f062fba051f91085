package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourism-api/configs"
	"tourism-api/models"
)

func destinationCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "destinations")
}

func CreateDestination() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var destination models.Destination
		if err := json.NewDecoder(r.Body).Decode(&destination); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		if destination.Name == "" {
			errorResponse(rw, fmt.Errorf("validation failed: name required"), http.StatusInternalServerError)
			return
		}

		now := time.Now()
		destination.ID = primitive.NewObjectID()
		destination.CreatedAt = now
		destination.UpdatedAt = now

		if _, err := destinationCollection().InsertOne(ctx, destination); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		createdResponse(rw, destination)
	}
}

func GetDestinations() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		cursor, err := listFind(ctx, r, destinationCollection)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var destinations []models.Destination
		if err := cursor.All(ctx, &destinations); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if destinations == nil {
			destinations = []models.Destination{}
		}

		writeJSON(rw, http.StatusOK, destinations)
	}
}

func GetDestinationByID() http.HandlerFunc {
	return getDocumentByID(destinationCollection, "destination not found")
}

func UpdateDestination() http.HandlerFunc {
	return updateDocumentByID(destinationCollection, "destination not found", nil, nil)
}

func DeleteDestination() http.HandlerFunc {
	return deleteDocumentByID(destinationCollection, "destination deleted", nil)
}
