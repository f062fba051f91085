package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
)

func TravelTipRoutes(router *mux.Router) {
	router.HandleFunc("/api/travel-tips", controllers.CreateTravelTip()).Methods("POST")
	router.HandleFunc("/api/travel-tips", controllers.GetTravelTips()).Methods("GET")
	router.HandleFunc("/api/travel-tips/{id}", controllers.GetTravelTipByID()).Methods("GET")
	router.HandleFunc("/api/travel-tips/{id}", controllers.UpdateTravelTip()).Methods("PUT")
	router.HandleFunc("/api/travel-tips/{id}", controllers.DeleteTravelTip()).Methods("DELETE")
}
