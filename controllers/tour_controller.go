package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourism-api/configs"
	"tourism-api/models"
	"tourism-api/utils"
)

const toursCacheKey = "cache:tours"

func tourCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "tours")
}

func CreateTour() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var tour models.Tour
		if err := json.NewDecoder(r.Body).Decode(&tour); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		if tour.Title == "" || tour.Country == "" || tour.Days <= 0 {
			errorResponse(rw, fmt.Errorf("validation failed: title, country, days required"), http.StatusInternalServerError)
			return
		}

		now := time.Now()
		tour.ID = primitive.NewObjectID()
		tour.Slug = utils.Slugify(tour.Title)
		tour.CreatedAt = now
		tour.UpdatedAt = now

		if _, err := tourCollection().InsertOne(ctx, tour); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		invalidateListCache(ctx, toursCacheKey)
		createdResponse(rw, tour)
	}
}

// GetTours serves the public tour list. The unfiltered list is cached.
func GetTours() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		cacheable := len(r.URL.Query()) == 0
		if cacheable {
			if raw, ok := cachedList(ctx, toursCacheKey); ok {
				rw.Header().Set("Content-Type", "application/json")
				rw.Write(raw)
				return
			}
		}

		cursor, err := listFind(ctx, r, tourCollection)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var tours []models.Tour
		if err := cursor.All(ctx, &tours); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if tours == nil {
			tours = []models.Tour{}
		}

		if cacheable {
			if payload, err := json.Marshal(tours); err == nil {
				storeListCache(ctx, toursCacheKey, payload)
			}
		}
		writeJSON(rw, http.StatusOK, tours)
	}
}

func GetTourByID() http.HandlerFunc {
	return getDocumentByID(tourCollection, "tour not found")
}

func UpdateTour() http.HandlerFunc {
	return updateDocumentByID(tourCollection, "tour not found",
		func(payload map[string]interface{}) {
			if title, ok := payload["title"].(string); ok {
				payload["slug"] = utils.Slugify(title)
			}
		},
		func(ctx context.Context) { invalidateListCache(ctx, toursCacheKey) },
	)
}

func DeleteTour() http.HandlerFunc {
	return deleteDocumentByID(tourCollection, "tour deleted",
		func(ctx context.Context) { invalidateListCache(ctx, toursCacheKey) },
	)
}
