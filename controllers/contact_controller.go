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
	"tourism-api/utils"
)

func contactCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "contacts")
}

// SubmitContact records a contact form message and then notifies the staff
// inbox. As with the custom tour form, the email outcome never fails the
// request.
func SubmitContact(mailer utils.Mailer) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var submission models.ContactSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		if submission.FullName == "" || submission.Email == "" || submission.Message == "" {
			errorResponse(rw, fmt.Errorf("validation failed: fullName, email, message required"), http.StatusInternalServerError)
			return
		}

		submission.ID = primitive.NewObjectID()
		submission.CreatedAt = time.Now()

		if _, err := contactCollection().InsertOne(ctx, submission); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		notification := notificationSent
		subject, body := utils.StaffContactEmail(&submission)
		if err := mailer.Send(configs.EnvAdminEmail(), subject, body); err != nil {
			notification = notificationFailed
			configs.LogWithContext("contact", "staff-notification").
				WithError(err).
				WithField("submission_id", submission.ID.Hex()).
				Error("Failed to send contact notification email")
		}

		writeEnvelope(rw, http.StatusCreated, "success", map[string]interface{}{
			"data":         submission,
			"notification": notification,
		})
	}
}

func GetContacts() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		cursor, err := listFind(ctx, r, contactCollection)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var submissions []models.ContactSubmission
		if err := cursor.All(ctx, &submissions); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if submissions == nil {
			submissions = []models.ContactSubmission{}
		}

		writeJSON(rw, http.StatusOK, submissions)
	}
}

func DeleteContact() http.HandlerFunc {
	return deleteDocumentByID(contactCollection, "contact submission deleted", nil)
}
