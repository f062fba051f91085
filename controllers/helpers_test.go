package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListRange(t *testing.T) {
	cases := []struct {
		query     string
		wantLimit int64
		wantSkip  int64
	}{
		{"", 0, 0},
		{"?limit=10", 10, 0},
		{"?limit=10&skip=20", 10, 20},
		{"?limit=abc&skip=-5", 0, 0},
		{"?limit=0", 0, 0},
	}

	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/api/customized"+tc.query, nil)
		limit, skip := parseListRange(r)
		assert.Equal(t, tc.wantLimit, limit, "limit for %q", tc.query)
		assert.Equal(t, tc.wantSkip, skip, "skip for %q", tc.query)
	}
}

func TestErrorResponseEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	errorResponse(w, assert.AnError, http.StatusInternalServerError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), assert.AnError.Error())
}

func TestNotFoundResponseEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	notFoundResponse(w, "tour not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "tour not found")
}
