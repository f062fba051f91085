package configs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client instance
var DB *mongo.Client

func ConnectDB() error {
	if DB != nil {
		return nil // Already connected
	}

	logger := LogWithContext("database", "mongodb-connect")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
	if err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.WithError(err).Error("Failed to ping MongoDB")
		return err
	}

	DB = client
	logger.Info("Connected to MongoDB successfully")
	return nil
}

// getting database collections
func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	if client == nil {
		panic("MongoDB client is nil - database not connected")
	}
	return client.Database(EnvDBName()).Collection(collectionName)
}
