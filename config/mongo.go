package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectDB() (*mongo.Client, error) {
	mongoURI := os.Getenv("MONGOURI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGOURI not set in environment")
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	log.Println("Connected to MongoDB")
	return client, nil
}

// PropertiesCollection is where the single property blob document lives.
func PropertiesCollection(client *mongo.Client) *mongo.Collection {
	dbName := os.Getenv("DB")
	if dbName == "" {
		dbName = "marketplace"
	}
	return client.Database(dbName).Collection("properties")
}

func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Fatalf("Error closing database connection: %v", err)
	}
	log.Println("MongoDB connection closed")
}
