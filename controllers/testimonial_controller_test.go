package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-api/controllers"
)

// The create handler validates before it ever reaches the database, so the
// rejection paths are testable without a live connection.

func postTestimonial(t *testing.T, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/api/testimonials", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	controllers.CreateTestimonial()(w, req)
	return w
}

func TestCreateTestimonialRejectsOutOfRangeRating(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		w := postTestimonial(t, map[string]interface{}{
			"name":    "Jane Doe",
			"message": "Wonderful trip",
			"rating":  rating,
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code, "rating %d", rating)
		assert.Contains(t, w.Body.String(), "rating must be between 1 and 5")
	}
}

func TestCreateTestimonialRejectsMissingFields(t *testing.T) {
	cases := []map[string]interface{}{
		{"message": "Wonderful trip", "rating": 5},
		{"name": "Jane Doe", "rating": 5},
	}
	for _, payload := range cases {
		w := postTestimonial(t, payload)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "name, message required")
	}
}
