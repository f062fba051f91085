package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shared handler plumbing for the plain CRUD resources (tours, blogs,
// testimonials, destinations, trusted companies, travel tips). The custom
// tour request flow has its own handlers because of its notification side
// effects.

func getDocumentByID(collFn func() *mongo.Collection, notFoundMsg string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			notFoundResponse(rw, notFoundMsg)
			return
		}

		var doc bson.M
		err = collFn().FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			notFoundResponse(rw, notFoundMsg)
			return
		}
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		writeJSON(rw, http.StatusOK, doc)
	}
}

// updateDocumentByID applies the request body as a $set, the same loose
// partial-update contract the admin dashboard has always used. prepare may
// rewrite the payload before it is applied; after runs on success (cache
// invalidation).
func updateDocumentByID(collFn func() *mongo.Collection, notFoundMsg string, prepare func(map[string]interface{}), after func(context.Context)) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			notFoundResponse(rw, notFoundMsg)
			return
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		delete(payload, "_id")
		delete(payload, "createdAt")
		payload["updatedAt"] = time.Now()
		if prepare != nil {
			prepare(payload)
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var updated bson.M
		err = collFn().FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": payload}, opts).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			notFoundResponse(rw, notFoundMsg)
			return
		}
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		if after != nil {
			after(ctx)
		}
		successResponse(rw, updated)
	}
}

// deleteDocumentByID removes the document unconditionally; the response is
// success whether or not anything matched.
func deleteDocumentByID(collFn func() *mongo.Collection, deletedMsg string, after func(context.Context)) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err == nil {
			if _, err := collFn().DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
				errorResponse(rw, err, http.StatusInternalServerError)
				return
			}
			if after != nil {
				after(ctx)
			}
		}

		successResponse(rw, deletedMsg)
	}
}

func rangeFindOptions(limit, skip int64, sortField string) *options.FindOptions {
	findOptions := options.Find().SetSort(bson.M{sortField: -1})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	if skip > 0 {
		findOptions.SetSkip(skip)
	}
	return findOptions
}

// listFindOptions builds the standard newest-first find options with the
// optional limit/skip range from the query string.
func listFindOptions(r *http.Request, sortField string) *options.FindOptions {
	limit, skip := parseListRange(r)
	return rangeFindOptions(limit, skip, sortField)
}

func listFind(ctx context.Context, r *http.Request, collFn func() *mongo.Collection) (*mongo.Cursor, error) {
	return collFn().Find(ctx, bson.M{}, listFindOptions(r, "createdAt"))
}
