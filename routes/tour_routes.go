package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
)

func TourRoutes(router *mux.Router) {
	router.HandleFunc("/api/tours", controllers.CreateTour()).Methods("POST")
	router.HandleFunc("/api/tours", controllers.GetTours()).Methods("GET")
	router.HandleFunc("/api/tours/{id}", controllers.GetTourByID()).Methods("GET")
	router.HandleFunc("/api/tours/{id}", controllers.UpdateTour()).Methods("PUT")
	router.HandleFunc("/api/tours/{id}", controllers.DeleteTour()).Methods("DELETE")
}
