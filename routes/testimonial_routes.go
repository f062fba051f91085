package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
)

func TestimonialRoutes(router *mux.Router) {
	router.HandleFunc("/api/testimonials", controllers.CreateTestimonial()).Methods("POST")
	router.HandleFunc("/api/testimonials", controllers.GetTestimonials()).Methods("GET")
	router.HandleFunc("/api/testimonials/{id}", controllers.GetTestimonialByID()).Methods("GET")
	router.HandleFunc("/api/testimonials/{id}", controllers.UpdateTestimonial()).Methods("PUT")
	router.HandleFunc("/api/testimonials/{id}", controllers.DeleteTestimonial()).Methods("DELETE")
}
