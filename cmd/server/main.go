package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mergington-high/activities-api/internal/config"
	"github.com/mergington-high/activities-api/internal/handlers"
	"github.com/mergington-high/activities-api/internal/metrics"
	"github.com/mergington-high/activities-api/internal/repository"
	"github.com/mergington-high/activities-api/internal/services"
	"github.com/mergington-high/activities-api/pkg/logger"
	"github.com/mergington-high/activities-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	// --- Store ---
	store := repository.NewMemoryStore(repository.SeedActivities())

	// Publish the seeded roster sizes before the first request arrives.
	if seeded, err := store.GetAll(context.Background()); err == nil {
		for name, activity := range seeded {
			metrics.RosterSize.WithLabelValues(name).Set(float64(len(activity.Participants)))
		}
	}

	// --- Services ---
	activityService := services.NewActivityService(store)

	// --- Handlers ---
	activityHandler := handlers.NewActivityHandler(activityService, cfg)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	router.HandleFunc("/", activityHandler.RootHandler).Methods("GET")
	router.HandleFunc("/health", activityHandler.HealthHandler).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Activity routes
	activityRoutes := router.PathPrefix("/activities").Subrouter()
	activityRoutes.HandleFunc("", activityHandler.GetActivitiesHandler).Methods("GET")
	activityRoutes.HandleFunc("/{name}/signup", activityHandler.SignupHandler).Methods("POST")
	activityRoutes.HandleFunc("/{name}/unregister", activityHandler.UnregisterHandler).Methods("DELETE")

	// Apply middleware for logging and metrics
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.MetricsMiddleware)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
