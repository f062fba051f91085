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

func postContact(t *testing.T, mailer *fakeMailer, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	controllers.SubmitContact(mailer)(w, req)
	return w
}

func TestSubmitContactRejectsMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing fullName", map[string]interface{}{"email": "jane@example.com", "message": "Hello"}},
		{"missing email", map[string]interface{}{"fullName": "Jane Doe", "message": "Hello"}},
		{"missing message", map[string]interface{}{"fullName": "Jane Doe", "email": "jane@example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			w := postContact(t, mailer, tc.payload)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), "fullName, email, message required")
			assert.Empty(t, mailer.sent())
		})
	}
}
