package routes

import (
	"github.com/gorilla/mux"

	"tourism-api/controllers"
)

func BlogRoutes(router *mux.Router) {
	router.HandleFunc("/api/blogs", controllers.CreateBlog()).Methods("POST")
	router.HandleFunc("/api/blogs", controllers.GetBlogs()).Methods("GET")
	router.HandleFunc("/api/blogs/{id}", controllers.GetBlogByID()).Methods("GET")
	router.HandleFunc("/api/blogs/{id}", controllers.UpdateBlog()).Methods("PUT")
	router.HandleFunc("/api/blogs/{id}", controllers.DeleteBlog()).Methods("DELETE")
}
