package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/estatedesk/property_marketplace/backend/config"
	"github.com/estatedesk/property_marketplace/backend/routes"
	"github.com/estatedesk/property_marketplace/backend/store"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func setupRouter(properties *store.PropertyStore, redisClient *redis.Client) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, properties, redisClient)
	return router
}

func main() {
	loadEnv()

	blob, cleanup, err := config.NewBlob()
	if err != nil {
		log.Fatalf("Failed to set up the property store: %v", err)
	}
	defer cleanup()

	properties := store.New(blob)
	if err := properties.Init(context.Background()); err != nil {
		log.Fatalf("Failed to seed the property store: %v", err)
	}

	redisClient := config.InitRedis()

	router := setupRouter(properties, redisClient)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
