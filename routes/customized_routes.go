package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
	"tourism-api/utils"
)

func CustomizedRoutes(router *mux.Router, store controllers.CustomizedStore, mailer utils.Mailer) {
	router.HandleFunc("/api/customized/add", controllers.AddCustomRequest(store, mailer)).Methods("POST")
	router.HandleFunc("/api/customized", controllers.GetCustomRequests(store)).Methods("GET")
	router.HandleFunc("/api/customized/{id}", controllers.GetCustomRequestByID(store)).Methods("GET")
	router.HandleFunc("/api/customized/{id}", controllers.UpdateCustomRequest(store, mailer)).Methods("PUT")
	router.HandleFunc("/api/customized/{id}", controllers.DeleteCustomRequest(store)).Methods("DELETE")
}
