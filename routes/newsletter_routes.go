package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
)

func NewsletterRoutes(router *mux.Router, store controllers.NewsletterStore) {
	router.HandleFunc("/api/newsletter", controllers.SubscribeNewsletter(store)).Methods("POST")
	router.HandleFunc("/api/newsletter", controllers.GetNewsletterSubscribers(store)).Methods("GET")
	router.HandleFunc("/api/newsletter/unsubscribe/{token}", controllers.UnsubscribeNewsletter(store)).Methods("GET")
	router.HandleFunc("/api/newsletter/{id}", controllers.DeleteNewsletterSubscriber(store)).Methods("DELETE")
}
