package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"tourism-api/configs"
	"tourism-api/controllers"
	"tourism-api/middleware"
	"tourism-api/routes"
	"tourism-api/utils"
)

func main() {
	// Initialize logger first
	configs.InitLogger()
	logger := configs.LogWithContext("tourism-api", "startup")

	logger.Info("Starting tourism API service initialization")

	router := mux.NewRouter()

	// Add middleware
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)

	logger.Info("Middleware configured")

	logger.Info("Connecting to databases...")
	if err := connectMongoDB(logger); err != nil {
		logger.WithError(err).Fatal("Failed to connect to MongoDB")
		return
	}

	// The Redis cache is optional: a failed connection only disables the
	// public list cache.
	if err := configs.ConnectREDISDB(); err != nil {
		logger.WithError(err).Warn("Redis unavailable, list caching disabled")
	} else {
		logger.Info("Redis connected successfully")
	}

	mailer := utils.NewSMTPMailerFromEnv()
	store := controllers.NewMongoCustomizedStore()
	newsletterStore := controllers.NewMongoNewsletterStore()

	logger.Info("Registering API routes...")
	registerRoutes(router, store, newsletterStore, mailer, logger)

	// Health check endpoints
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Ready")
	}).Methods("GET")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: configs.EnvAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + configs.EnvPort(),
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("port", configs.EnvPort()).Info("Tourism API service started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("Server shutdown complete")
	}
}

func connectMongoDB(logger *logrus.Entry) error {
	// Try to connect with retry logic
	maxRetries := 5
	start := time.Now()
	for i := 0; i < maxRetries; i++ {
		err := configs.ConnectDB()
		if err == nil {
			logger.WithField("duration", time.Since(start).String()).Info("MongoDB connected successfully")
			return nil
		}
		if i < maxRetries-1 {
			time.Sleep(time.Duration(i+1) * time.Second)
		} else {
			return err
		}
	}
	return fmt.Errorf("failed to connect after %d retries", maxRetries)
}

func registerRoutes(router *mux.Router, store controllers.CustomizedStore, newsletterStore controllers.NewsletterStore, mailer utils.Mailer, logger *logrus.Entry) {
	routes.CustomizedRoutes(router, store, mailer)
	logger.Info("Customized tour request routes registered")

	routes.TourRoutes(router)
	logger.Info("Tour routes registered")

	routes.BlogRoutes(router)
	logger.Info("Blog routes registered")

	routes.TestimonialRoutes(router)
	logger.Info("Testimonial routes registered")

	routes.DestinationRoutes(router)
	logger.Info("Destination routes registered")

	routes.TrustedCompanyRoutes(router)
	logger.Info("Trusted company routes registered")

	routes.TravelTipRoutes(router)
	logger.Info("Travel tip routes registered")

	routes.ContactRoutes(router, mailer)
	logger.Info("Contact routes registered")

	routes.NewsletterRoutes(router, newsletterStore)
	logger.Info("Newsletter routes registered")
}
