package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
)

func DestinationRoutes(router *mux.Router) {
	router.HandleFunc("/api/destinations", controllers.CreateDestination()).Methods("POST")
	router.HandleFunc("/api/destinations", controllers.GetDestinations()).Methods("GET")
	router.HandleFunc("/api/destinations/{id}", controllers.GetDestinationByID()).Methods("GET")
	router.HandleFunc("/api/destinations/{id}", controllers.UpdateDestination()).Methods("PUT")
	router.HandleFunc("/api/destinations/{id}", controllers.DeleteDestination()).Methods("DELETE")
}
