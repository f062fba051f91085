package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
)

func TrustedCompanyRoutes(router *mux.Router) {
	router.HandleFunc("/api/trusted-companies", controllers.CreateTrustedCompany()).Methods("POST")
	router.HandleFunc("/api/trusted-companies", controllers.GetTrustedCompanies()).Methods("GET")
	router.HandleFunc("/api/trusted-companies/{id}", controllers.GetTrustedCompanyByID()).Methods("GET")
	router.HandleFunc("/api/trusted-companies/{id}", controllers.UpdateTrustedCompany()).Methods("PUT")
	router.HandleFunc("/api/trusted-companies/{id}", controllers.DeleteTrustedCompany()).Methods("DELETE")
}
