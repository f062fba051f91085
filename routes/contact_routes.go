package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
	"tourism-api/utils"
)

func ContactRoutes(router *mux.Router, mailer utils.Mailer) {
	router.HandleFunc("/api/contact", controllers.SubmitContact(mailer)).Methods("POST")
	router.HandleFunc("/api/contact", controllers.GetContacts()).Methods("GET")
	router.HandleFunc("/api/contact/{id}", controllers.DeleteContact()).Methods("DELETE")
}
