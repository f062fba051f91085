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

func travelTipCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "traveltips")
}

func CreateTravelTip() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var tip models.TravelTip
		if err := json.NewDecoder(r.Body).Decode(&tip); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		if tip.Title == "" || tip.Content == "" {
			errorResponse(rw, fmt.Errorf("validation failed: title, content required"), http.StatusInternalServerError)
			return
		}

		now := time.Now()
		tip.ID = primitive.NewObjectID()
		tip.CreatedAt = now
		tip.UpdatedAt = now

		if _, err := travelTipCollection().InsertOne(ctx, tip); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		createdResponse(rw, tip)
	}
}

func GetTravelTips() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		cursor, err := listFind(ctx, r, travelTipCollection)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var tips []models.TravelTip
		if err := cursor.All(ctx, &tips); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if tips == nil {
			tips = []models.TravelTip{}
		}

		writeJSON(rw, http.StatusOK, tips)
	}
}

func GetTravelTipByID() http.HandlerFunc {
	return getDocumentByID(travelTipCollection, "travel tip not found")
}

func UpdateTravelTip() http.HandlerFunc {
	return updateDocumentByID(travelTipCollection, "travel tip not found", nil, nil)
}

func DeleteTravelTip() http.HandlerFunc {
	return deleteDocumentByID(travelTipCollection, "travel tip deleted", nil)
}
