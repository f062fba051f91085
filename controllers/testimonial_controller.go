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

func testimonialCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "testimonials")
}

func CreateTestimonial() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var testimonial models.Testimonial
		if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		if testimonial.Name == "" || testimonial.Message == "" {
			errorResponse(rw, fmt.Errorf("validation failed: name, message required"), http.StatusInternalServerError)
			return
		}
		if testimonial.Rating < 1 || testimonial.Rating > 5 {
			errorResponse(rw, fmt.Errorf("validation failed: rating must be between 1 and 5"), http.StatusInternalServerError)
			return
		}

		now := time.Now()
		testimonial.ID = primitive.NewObjectID()
		testimonial.CreatedAt = now
		testimonial.UpdatedAt = now

		if _, err := testimonialCollection().InsertOne(ctx, testimonial); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		createdResponse(rw, testimonial)
	}
}

func GetTestimonials() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		cursor, err := listFind(ctx, r, testimonialCollection)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var testimonials []models.Testimonial
		if err := cursor.All(ctx, &testimonials); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if testimonials == nil {
			testimonials = []models.Testimonial{}
		}

		writeJSON(rw, http.StatusOK, testimonials)
	}
}

func GetTestimonialByID() http.HandlerFunc {
	return getDocumentByID(testimonialCollection, "testimonial not found")
}

func UpdateTestimonial() http.HandlerFunc {
	return updateDocumentByID(testimonialCollection, "testimonial not found", nil, nil)
}

func DeleteTestimonial() http.HandlerFunc {
	return deleteDocumentByID(testimonialCollection, "testimonial deleted", nil)
}
