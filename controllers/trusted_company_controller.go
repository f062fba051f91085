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

func trustedCompanyCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "trustedcompanies")
}

func CreateTrustedCompany() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var company models.TrustedCompany
		if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		if company.Name == "" {
			errorResponse(rw, fmt.Errorf("validation failed: name required"), http.StatusInternalServerError)
			return
		}

		now := time.Now()
		company.ID = primitive.NewObjectID()
		company.CreatedAt = now
		company.UpdatedAt = now

		if _, err := trustedCompanyCollection().InsertOne(ctx, company); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		createdResponse(rw, company)
	}
}

func GetTrustedCompanies() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		cursor, err := listFind(ctx, r, trustedCompanyCollection)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var companies []models.TrustedCompany
		if err := cursor.All(ctx, &companies); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if companies == nil {
			companies = []models.TrustedCompany{}
		}

		writeJSON(rw, http.StatusOK, companies)
	}
}

func GetTrustedCompanyByID() http.HandlerFunc {
	return getDocumentByID(trustedCompanyCollection, "trusted company not found")
}

func UpdateTrustedCompany() http.HandlerFunc {
	return updateDocumentByID(trustedCompanyCollection, "trusted company not found", nil, nil)
}

func DeleteTrustedCompany() http.HandlerFunc {
	return deleteDocumentByID(trustedCompanyCollection, "trusted company deleted", nil)
}
