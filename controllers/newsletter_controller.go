package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tourism-api/models"
)

// SubscribeNewsletter is idempotent per address: a repeat subscribe is a
// no-op, an unsubscribed address is reactivated with its existing token.
func SubscribeNewsletter(store NewsletterStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var payload struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		email := strings.ToLower(strings.TrimSpace(payload.Email))
		if email == "" {
			errorResponse(rw, fmt.Errorf("validation failed: email required"), http.StatusInternalServerError)
			return
		}

		existing, err := store.FindByEmail(ctx, email)
		if err == nil {
			if existing.Active {
				successResponse(rw, "already subscribed")
				return
			}
			if err := store.Reactivate(ctx, existing.ID); err != nil {
				errorResponse(rw, err, http.StatusInternalServerError)
				return
			}
			successResponse(rw, "resubscribed")
			return
		}
		if !errors.Is(err, models.ErrSubscriberNotFound) {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		subscriber := models.NewsletterSubscriber{
			ID:           primitive.NewObjectID(),
			Email:        email,
			Token:        uuid.NewString(),
			Active:       true,
			SubscribedAt: time.Now(),
		}
		if err := store.Insert(ctx, &subscriber); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		createdResponse(rw, subscriber)
	}
}

// UnsubscribeNewsletter deactivates the subscriber matching the token from
// an unsubscribe link.
func UnsubscribeNewsletter(store NewsletterStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		token := mux.Vars(r)["token"]
		matched, err := store.DeactivateByToken(ctx, token)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if !matched {
			notFoundResponse(rw, "subscription not found")
			return
		}

		successResponse(rw, "unsubscribed")
	}
}

func GetNewsletterSubscribers(store NewsletterStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		limit, skip := parseListRange(r)
		subscribers, err := store.FindAll(ctx, limit, skip)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if subscribers == nil {
			subscribers = []models.NewsletterSubscriber{}
		}

		writeJSON(rw, http.StatusOK, subscribers)
	}
}

func DeleteNewsletterSubscriber(store NewsletterStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		if _, err := store.Delete(ctx, mux.Vars(r)["id"]); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		successResponse(rw, "subscriber deleted")
	}
}
