package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tourism-api/responses"
)

const requestTimeout = 10 * time.Second

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func writeEnvelope(rw http.ResponseWriter, code int, message string, data map[string]interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	response := responses.APIResponse{Status: code, Message: message, Data: data}
	json.NewEncoder(rw).Encode(response)
}

func errorResponse(rw http.ResponseWriter, err error, code int) {
	writeEnvelope(rw, code, "error", map[string]interface{}{"data": err.Error()})
}

func successResponse(rw http.ResponseWriter, result interface{}) {
	writeEnvelope(rw, http.StatusOK, "success", map[string]interface{}{"data": result})
}

func createdResponse(rw http.ResponseWriter, result interface{}) {
	writeEnvelope(rw, http.StatusCreated, "success", map[string]interface{}{"data": result})
}

func notFoundResponse(rw http.ResponseWriter, message string) {
	writeEnvelope(rw, http.StatusNotFound, "error", map[string]interface{}{"data": message})
}

func writeJSON(rw http.ResponseWriter, code int, payload interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	json.NewEncoder(rw).Encode(payload)
}

// parseListRange reads the optional limit/skip query parameters. Zero limit
// means unbounded, which keeps the historical "return everything" behavior
// for callers that pass nothing.
func parseListRange(r *http.Request) (limit, skip int64) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			skip = v
		}
	}
	return limit, skip
}
