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

const blogsCacheKey = "cache:blogs"

func blogCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "blogs")
}

func CreateBlog() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		var blog models.Blog
		if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}
		if blog.Title == "" || blog.Content == "" {
			errorResponse(rw, fmt.Errorf("validation failed: title, content required"), http.StatusInternalServerError)
			return
		}

		now := time.Now()
		blog.ID = primitive.NewObjectID()
		blog.Slug = utils.Slugify(blog.Title)
		blog.CreatedAt = now
		blog.UpdatedAt = now

		if _, err := blogCollection().InsertOne(ctx, blog); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}

		invalidateListCache(ctx, blogsCacheKey)
		createdResponse(rw, blog)
	}
}

func GetBlogs() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext()
		defer cancel()

		cacheable := len(r.URL.Query()) == 0
		if cacheable {
			if raw, ok := cachedList(ctx, blogsCacheKey); ok {
				rw.Header().Set("Content-Type", "application/json")
				rw.Write(raw)
				return
			}
		}

		cursor, err := listFind(ctx, r, blogCollection)
		if err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var blogs []models.Blog
		if err := cursor.All(ctx, &blogs); err != nil {
			errorResponse(rw, err, http.StatusInternalServerError)
			return
		}
		if blogs == nil {
			blogs = []models.Blog{}
		}

		if cacheable {
			if payload, err := json.Marshal(blogs); err == nil {
				storeListCache(ctx, blogsCacheKey, payload)
			}
		}
		writeJSON(rw, http.StatusOK, blogs)
	}
}

func GetBlogByID() http.HandlerFunc {
	return getDocumentByID(blogCollection, "blog not found")
}

func UpdateBlog() http.HandlerFunc {
	return updateDocumentByID(blogCollection, "blog not found",
		func(payload map[string]interface{}) {
			if title, ok := payload["title"].(string); ok {
				payload["slug"] = utils.Slugify(title)
			}
		},
		func(ctx context.Context) { invalidateListCache(ctx, blogsCacheKey) },
	)
}

func DeleteBlog() http.HandlerFunc {
	return deleteDocumentByID(blogCollection, "blog deleted",
		func(ctx context.Context) { invalidateListCache(ctx, blogsCacheKey) },
	)
}
