package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tourism-api/controllers"
	"tourism-api/models"
	"tourism-api/routes"
)

type fakeNewsletterStore struct {
	mu   sync.Mutex
	subs map[string]models.NewsletterSubscriber // keyed by email
}

func newFakeNewsletterStore() *fakeNewsletterStore {
	return &fakeNewsletterStore{subs: map[string]models.NewsletterSubscriber{}}
}

func (s *fakeNewsletterStore) FindByEmail(_ context.Context, email string) (*models.NewsletterSubscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[email]
	if !ok {
		return nil, models.ErrSubscriberNotFound
	}
	return &sub, nil
}

func (s *fakeNewsletterStore) Insert(_ context.Context, sub *models.NewsletterSubscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.Email] = *sub
	return nil
}

func (s *fakeNewsletterStore) Reactivate(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, sub := range s.subs {
		if sub.ID == id {
			sub.Active = true
			s.subs[email] = sub
		}
	}
	return nil
}

func (s *fakeNewsletterStore) DeactivateByToken(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, sub := range s.subs {
		if sub.Token == token {
			sub.Active = false
			s.subs[email] = sub
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeNewsletterStore) FindAll(_ context.Context, limit, skip int64) ([]models.NewsletterSubscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.NewsletterSubscriber
	for _, sub := range s.subs {
		all = append(all, sub)
	}
	return all, nil
}

func (s *fakeNewsletterStore) Delete(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, sub := range s.subs {
		if sub.ID.Hex() == id {
			delete(s.subs, email)
			return 1, nil
		}
	}
	return 0, nil
}

func setupNewsletterRouter(store controllers.NewsletterStore) *mux.Router {
	router := mux.NewRouter()
	routes.NewsletterRoutes(router, store)
	return router
}

func subscribe(t *testing.T, router *mux.Router, email string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"email": email})
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubscribeCreatesSubscriber(t *testing.T) {
	store := newFakeNewsletterStore()
	router := setupNewsletterRouter(store)

	w := subscribe(t, router, "jane@example.com")

	assert.Equal(t, http.StatusCreated, w.Code)
	sub, err := store.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.True(t, sub.Active)
	assert.NotEmpty(t, sub.Token)
}

func TestSubscribeRepeatIsNoOp(t *testing.T) {
	store := newFakeNewsletterStore()
	router := setupNewsletterRouter(store)

	require.Equal(t, http.StatusCreated, subscribe(t, router, "jane@example.com").Code)

	w := subscribe(t, router, "jane@example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already subscribed")
	assert.Len(t, store.subs, 1)
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	store := newFakeNewsletterStore()
	router := setupNewsletterRouter(store)

	require.Equal(t, http.StatusCreated, subscribe(t, router, "  Jane@Example.COM ").Code)

	w := subscribe(t, router, "jane@example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.subs, 1)
}

func TestSubscribeReactivatesKeepingToken(t *testing.T) {
	store := newFakeNewsletterStore()
	router := setupNewsletterRouter(store)

	require.Equal(t, http.StatusCreated, subscribe(t, router, "jane@example.com").Code)
	before, err := store.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)

	// unsubscribe through the token link, then subscribe again
	req, _ := http.NewRequest(http.MethodGet, "/api/newsletter/unsubscribe/"+before.Token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	after, err := store.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.False(t, after.Active)

	w = subscribe(t, router, "jane@example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "resubscribed")

	reactivated, err := store.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.True(t, reactivated.Active)
	assert.Equal(t, before.Token, reactivated.Token)
}

func TestUnsubscribeUnknownToken(t *testing.T) {
	store := newFakeNewsletterStore()
	router := setupNewsletterRouter(store)

	req, _ := http.NewRequest(http.MethodGet, "/api/newsletter/unsubscribe/no-such-token", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribeMissingEmail(t *testing.T) {
	store := newFakeNewsletterStore()
	router := setupNewsletterRouter(store)

	w := subscribe(t, router, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, store.subs)
}
