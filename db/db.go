package db

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	UserCollection     *mongo.Collection
	ServicesCollection *mongo.Collection
	BookingsCollection *mongo.Collection
	PaymentsCollection *mongo.Collection
	Client             *mongo.Client
)

func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	if user != "" && host != "" {
		return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, pass, host)
	}
	return "mongodb://localhost:27017"
}

// Connect establishes the MongoDB connection and binds the collection
// handles. It must complete before the HTTP listener starts accepting
// traffic; handlers assume the handles are non-nil.
func Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI()))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}

	Client = client
	database := client.Database("styleDecorDB")
	UserCollection = database.Collection("users")
	ServicesCollection = database.Collection("services")
	BookingsCollection = database.Collection("bookings")
	PaymentsCollection = database.Collection("payments")
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
